package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/models"
)

// change builds a printable register line for a single register.
func (c *Context) change(enum int) (*models.Change, error) {
	val, err := c.S.RegRead(enum)
	if err != nil {
		return nil, err
	}
	name := c.S.Arch().Names[enum]
	return &models.Change{Old: val, New: val, Enum: enum, Name: name.Isa, Abi: name.Abi}, nil
}

var RegCmd = cmd(&Command{
	Name: "reg",
	Desc: "Display a register, or set it: reg <reg> [value].",
	Run: func(c *Context, reg string, args ...string) error {
		if len(args) > 1 {
			return errors.New("reg: too many arguments")
		}
		enum, ok := c.S.Arch().Lookup(reg)
		if !ok {
			return errors.Errorf("reg: invalid register '%s'", reg)
		}
		if len(args) == 1 {
			val, err := parseWord(args[0])
			if err != nil {
				return errors.Wrap(err, "reg")
			}
			if err := c.S.RegWrite(enum, val); err != nil {
				return err
			}
		}
		ch, err := c.change(enum)
		if err != nil {
			return err
		}
		c.Printf("%s\n", strings.TrimRight(ch.String(false), " "))
		return nil
	},
})

var RdumpCmd = cmd(&Command{
	Name: "rdump",
	Desc: "Dump the instruction count, PC and registers, optionally to a file.",
	Run: func(c *Context, args ...string) error {
		if len(args) > 1 {
			return errors.New("rdump: too many arguments")
		}
		var w io.Writer = c
		color := c.Color
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return errors.Wrapf(err, "rdump: %s: unable to open file", args[0])
			}
			defer f.Close()
			w, color = f, false
		}
		changes, err := c.status.Changes(false)
		if err != nil {
			return err
		}
		return writeRdump(w, c, changes, color)
	},
})

const dashes = "--------------------------------------\n"

func writeRdump(w io.Writer, c *Context, changes *models.Changes, color bool) error {
	var b strings.Builder
	b.WriteString("Current CPU State and Register Values:\n")
	b.WriteString(dashes)
	fmt.Fprintf(&b, "%-20s = %d\n", "Instruction Count", c.S.InsCount)
	fmt.Fprintf(&b, "%-20s = 0x%08x\n", "Program Counter (PC)", c.S.PC())
	b.WriteString("\nRegister Values:\n")
	b.WriteString(dashes)
	b.WriteString(changes.String(color))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
