package rvsim

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/arch/riscv"
	"github.com/lunixbochs/rvsim/go/loader"
	"github.com/lunixbochs/rvsim/go/models"
	"github.com/lunixbochs/rvsim/go/models/cpu"
)

var ErrNotLoaded = errors.New("no program loaded")

// State is the architectural state of one simulated processor: registers, pc
// and the five memory regions. It is driven by a single goroutine.
type State struct {
	Regs  *cpu.Regs
	Mem   *cpu.Mem
	Hooks *cpu.Hooks
	Core  cpu.Core
	// Breaks stop Step and Run before the instruction at their address.
	Breaks *models.Breakpoints

	// Halted is set by the fault policy or a halt request and polled by the
	// execution loop. Only LoadProgram and Restart clear it.
	Halted   bool
	InsCount uint64

	pc      uint32
	config  *models.Config
	program string
	// the breakpoint execution is stopped at, passed over on the next step
	hit *models.Breakpoint
}

func NewState(config *models.Config) *State {
	if config == nil {
		config = &models.Config{}
	}
	config.Init()
	mem := newMem(riscv.Layout())
	s := &State{
		Regs:   cpu.NewRegs(riscv.NUM_REGS),
		Mem:    mem,
		Breaks: models.NewBreakpoints(),
		config: config,
	}
	s.Hooks = cpu.NewHooks(mem)
	s.addHooks()
	return s
}

// newMem panics on an inconsistent layout, which is a build bug rather than a
// runtime condition.
func newMem(layout cpu.Regions) *cpu.Mem {
	if err := layout.Check(); err != nil {
		panic(errors.Wrap(err, "bad memory layout"))
	}
	return cpu.NewMem(layout, binary.LittleEndian)
}

func (s *State) Config() *models.Config {
	return s.config
}

func (s *State) Arch() *models.Arch {
	return riscv.Arch
}

// LoadProgram replaces any loaded program with the record files found at
// path+suffix for each file backed region. Nothing stays loaded on error.
func (s *State) LoadProgram(path string) error {
	s.UnloadProgram()
	if err := loader.LoadRegions(s.Mem.Regions, path, s.Mem.Order()); err != nil {
		return errors.Wrap(err, "load program")
	}
	s.program = path
	s.reset()
	if s.config.Verbose {
		fmt.Fprintf(s.config.Output, "[load] %s\n%s\n", path, s.Mem.Regions)
	}
	return nil
}

// UnloadProgram frees every region. Calling it twice is harmless.
func (s *State) UnloadProgram() {
	s.Mem.Regions.Free()
	s.program = ""
}

// Restart reloads the current program from disk.
func (s *State) Restart() error {
	if s.program == "" {
		return errors.WithStack(ErrNotLoaded)
	}
	return s.LoadProgram(s.program)
}

func (s *State) Loaded() bool {
	return s.Mem.Regions.Loaded()
}

func (s *State) Program() string {
	return s.program
}

// entry state: pc at the start of user text, sp at the top of the stack, gp at
// the start of user data
func (s *State) reset() {
	s.Halted = false
	s.InsCount = 0
	s.hit = nil
	s.Regs.Reset()
	rs := s.Mem.Regions
	s.pc = rs[riscv.TEXT].Addr
	s.Regs.RegWrite(riscv.REG_SP, uint32(rs[riscv.STACK].End()))
	s.Regs.RegWrite(riscv.REG_GP, rs[riscv.DATA].Addr)
}

func (s *State) PC() uint32 {
	return s.pc
}

func (s *State) SetPC(pc uint32) {
	s.pc = pc
	s.hit = nil
}

// AtBreakpoint returns the breakpoint execution last stopped at, or nil once
// execution has moved on.
func (s *State) AtBreakpoint() *models.Breakpoint {
	return s.hit
}

func (s *State) RegRead(reg int) (uint32, error) {
	return s.Regs.RegRead(reg)
}

// x0 is hardwired to zero; writes to it are dropped.
func (s *State) RegWrite(reg int, val uint32) error {
	if reg == riscv.REG_ZERO {
		return nil
	}
	return s.Regs.RegWrite(reg, val)
}

func (s *State) RegDump() ([]models.RegVal, error) {
	return riscv.Arch.RegDump(s.Regs)
}

func (s *State) Halt() {
	s.Halted = true
}

func (s *State) IsHalted() bool {
	return s.Halted
}

func (s *State) OnCode(addr, size uint32) {
	s.Hooks.OnCode(addr, size)
}

var _ cpu.Cpu = &State{}
