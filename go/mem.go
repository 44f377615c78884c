package rvsim

import (
	"fmt"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

// fault reports a bad address and halts. The core observes the halt on its
// next poll; nothing is unwound.
func (s *State) fault(addr uint32) {
	fmt.Fprintf(s.config.Output, "Encountered invalid memory address 0x%08x. Halting simulation.\n", addr)
	s.Halted = true
}

// Read32 returns the little-endian word at addr. An address outside every
// loaded region, or a word running off the end of one, halts the simulation
// and reads as 0. Alignment is not checked.
func (s *State) Read32(addr uint32) uint32 {
	val, err := s.Mem.ReadUint(addr, 4, cpu.MEM_READ)
	if err != nil {
		s.fault(addr)
		return 0
	}
	return val
}

// Write32 stores val little-endian at addr. On a bad address nothing is
// written and the simulation halts.
func (s *State) Write32(addr, val uint32) {
	if err := s.Mem.WriteUint(addr, 4, val); err != nil {
		s.fault(addr)
	}
}

// Fetch32 is Read32 for instruction fetch; hooks see it as MEM_FETCH.
func (s *State) Fetch32(addr uint32) uint32 {
	val, err := s.Mem.ReadUint(addr, 4, cpu.MEM_FETCH)
	if err != nil {
		s.fault(addr)
		return 0
	}
	return val
}

// RangeValid reports whether [start, end] lies inside one loaded region.
func (s *State) RangeValid(start, end uint32) bool {
	return s.Mem.RangeValid(start, end)
}

// MemRead and MemWrite are for debuggers and scripts. They return a
// *cpu.MemError on a bad address and leave the halt flag alone.
func (s *State) MemRead(addr, size uint32) ([]byte, error) {
	return s.Mem.MemRead(addr, size)
}

func (s *State) MemWrite(addr uint32, p []byte) error {
	return s.Mem.MemWrite(addr, p)
}
