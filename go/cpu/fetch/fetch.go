// Package fetch is a minimal execution core. It fetches each instruction
// word, reports it to code hooks and advances the pc. The only instruction it
// acts on is the halting ecall; everything else is treated as a no-op.
package fetch

import (
	"github.com/lunixbochs/rvsim/go/arch/riscv"
	"github.com/lunixbochs/rvsim/go/models/cpu"
)

const insSize = 4

type Core struct {
	// Ecalls counts environment calls that did not halt.
	Ecalls uint64
}

func New() *Core {
	return &Core{}
}

func (f *Core) Step(c cpu.Cpu) error {
	pc := c.PC()
	ins := c.Fetch32(pc)
	if c.IsHalted() {
		return nil
	}
	c.OnCode(pc, insSize)
	// a hook may halt us
	if c.IsHalted() {
		return nil
	}
	if ins == riscv.ECALL {
		a0, err := c.RegRead(riscv.REG_A0)
		if err != nil {
			return err
		}
		if a0 == riscv.ECALL_ARG_HALT {
			c.Halt()
			return nil
		}
		f.Ecalls++
	}
	c.SetPC(pc + insSize)
	return nil
}

var _ cpu.Core = &Core{}
