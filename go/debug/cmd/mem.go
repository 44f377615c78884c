package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/models"
	"github.com/lunixbochs/rvsim/go/models/cpu"
)

var MapsCmd = cmd(&Command{
	Name: "maps",
	Desc: "Display memory regions.",
	Run: func(c *Context) error {
		for _, r := range c.S.Mem.Regions {
			c.Printf("  %v\n", r.String())
		}
		return nil
	},
})

// shell memory access never halts the processor
func (c *Context) word(addr uint32) (uint32, error) {
	mem, err := c.S.MemRead(addr, 4)
	if err != nil {
		return 0, err
	}
	return c.S.Mem.Order().Uint32(mem), nil
}

var MemoryCmd = cmd(&Command{
	Name: "memory",
	Desc: "Display the word at an address, or set it: memory <addr> [value].",
	Run: func(c *Context, addr uint32, args ...string) error {
		if len(args) > 1 {
			return errors.New("memory: too many arguments")
		}
		if len(args) == 1 {
			val, err := parseWord(args[0])
			if err != nil {
				return errors.Wrap(err, "memory")
			}
			buf := make([]byte, 4)
			c.S.Mem.Order().PutUint32(buf, val)
			if err := c.S.MemWrite(addr, buf); err != nil {
				return err
			}
		}
		val, err := c.word(addr)
		if err != nil {
			return err
		}
		c.Printf("0x%08x: 0x%08x (%d)\n", addr, val, int32(val))
		return nil
	},
})

var MdumpCmd = cmd(&Command{
	Name: "mdump",
	Desc: "Dump the words from lo to hi inclusive, optionally to a file: mdump <lo> <hi> [file].",
	Run: func(c *Context, lo, hi uint32, args ...string) error {
		if len(args) > 1 {
			return errors.New("mdump: too many arguments")
		}
		// dump whole words
		lo, hi = cpu.AlignDown(lo, 4), cpu.AlignDown(hi, 4)
		if lo > hi {
			return errors.Errorf("mdump: start 0x%08x is past end 0x%08x", lo, hi)
		}
		if !c.S.RangeValid(lo, hi+3) {
			return errors.Errorf("mdump: invalid address range 0x%08x-0x%08x", lo, hi)
		}
		var w io.Writer = c
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return errors.Wrapf(err, "mdump: %s: unable to open file", args[0])
			}
			defer f.Close()
			w = f
		}
		var b strings.Builder
		b.WriteString("Memory Contents:\n")
		b.WriteString(dashes)
		for addr := uint64(lo); addr <= uint64(hi); addr += 4 {
			val, err := c.word(uint32(addr))
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "0x%08x: 0x%08x (%d)\n", addr, val, int32(val))
		}
		_, err := io.WriteString(w, b.String())
		return err
	},
})

var HexdumpCmd = cmd(&Command{
	Name: "hexdump",
	Desc: "Hex dump size bytes of memory: hexdump <addr> <size>.",
	Run: func(c *Context, addr, size uint32) error {
		mem, err := c.S.MemRead(addr, size)
		if err != nil {
			return err
		}
		for _, line := range models.HexDump(addr, mem) {
			c.Printf("  %s\n", line)
		}
		return nil
	},
})
