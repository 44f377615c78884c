package rvsim

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/lunixbochs/rvsim/go/arch/riscv"
)

func faultMsg(addr uint32) string {
	return fmt.Sprintf("Encountered invalid memory address 0x%08x. Halting simulation.\n", addr)
}

func TestReadFault(t *testing.T) {
	table := []uint32{
		0x0,
		riscv.USER_TEXT_START - 4,
		riscv.USER_TEXT_START + 12, // headroom past the loaded text
		riscv.USER_TEXT_START + 10, // straddles the end of text
		riscv.USER_DATA_START + 8,
		riscv.STACK_START - 4,
		riscv.STACK_END,
		riscv.STACK_END - 2,
		riscv.KERNEL_DATA_START, // kdata is empty
		0xfffffffc,
	}
	for _, addr := range table {
		s, out := loadState(t, simpleProgram())
		if val := s.Read32(addr); val != 0 {
			t.Errorf("Read32(%#x) = %#x, want 0", addr, val)
		}
		if !s.Halted {
			t.Errorf("Read32(%#x) did not halt", addr)
		}
		if out.String() != faultMsg(addr) {
			t.Errorf("Read32(%#x) diagnostic %q", addr, out.String())
		}
	}
}

func TestWriteFault(t *testing.T) {
	s, out := loadState(t, simpleProgram())
	var before [][]byte
	for _, r := range s.Mem.Regions {
		before = append(before, append([]byte(nil), r.Data...))
	}
	s.Write32(riscv.USER_DATA_START+6, 0xffffffff)
	if !s.Halted || out.String() != faultMsg(riscv.USER_DATA_START+6) {
		t.Fatalf("straddling write: halted=%v out=%q", s.Halted, out.String())
	}
	for i, r := range s.Mem.Regions {
		if !bytes.Equal(before[i], r.Data) {
			t.Errorf("%s mutated by a faulting write", r.Desc)
		}
	}
}

func TestReadWrite(t *testing.T) {
	s, out := loadState(t, simpleProgram())
	addrs := []uint32{
		riscv.USER_TEXT_START,
		riscv.USER_DATA_START + 4,
		riscv.STACK_START,
		riscv.STACK_END - 4,
		riscv.KERNEL_TEXT_START,
	}
	for _, addr := range addrs {
		s.Write32(addr, 0x11223344)
		if got := s.Read32(addr); got != 0x11223344 {
			t.Errorf("round trip at %#x: %#x", addr, got)
		}
		raw, err := s.MemRead(addr, 4)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(raw, []byte{0x44, 0x33, 0x22, 0x11}) {
			t.Errorf("byte order at %#x: % x", addr, raw)
		}
	}
	if s.Halted || out.Len() != 0 {
		t.Fatalf("in-range accesses halted: %q", out.String())
	}
}

func TestStackZeroed(t *testing.T) {
	s, _ := loadState(t, simpleProgram())
	for addr := uint32(riscv.STACK_START); addr < riscv.STACK_END; addr += 0x1000 {
		if s.Read32(addr) != 0 {
			t.Fatalf("stack not zeroed at %#x", addr)
		}
	}
}

func TestRangeValid(t *testing.T) {
	s, _ := loadState(t, simpleProgram())
	table := []struct {
		start, end uint32
		valid      bool
	}{
		{riscv.USER_TEXT_START, riscv.USER_TEXT_START + 11, true},
		{riscv.USER_TEXT_START, riscv.USER_TEXT_START + 12, false},
		{riscv.USER_TEXT_START + 8, riscv.USER_TEXT_START + 8, false},
		{riscv.STACK_START, riscv.STACK_END - 1, true},
		{riscv.STACK_END - 4, riscv.STACK_END, false},
		{riscv.USER_DATA_START + 4, riscv.STACK_START, false},
	}
	for _, v := range table {
		if got := s.RangeValid(v.start, v.end); got != v.valid {
			t.Errorf("RangeValid(%#x, %#x) = %v", v.start, v.end, got)
		}
	}
	if s.Halted {
		t.Error("RangeValid halted the simulation")
	}
	s.UnloadProgram()
	if s.RangeValid(riscv.USER_TEXT_START, riscv.USER_TEXT_START+3) {
		t.Error("unloaded text is still valid")
	}
}

func TestDebugAccessNoHalt(t *testing.T) {
	s, out := loadState(t, simpleProgram())
	if _, err := s.MemRead(0, 4); err == nil {
		t.Error("MemRead(0) succeeded")
	}
	if err := s.MemWrite(0, []byte{1}); err == nil {
		t.Error("MemWrite(0) succeeded")
	}
	if s.Halted || out.Len() != 0 {
		t.Error("debug accessors touched the halt flag")
	}
}

func BenchmarkRead32(b *testing.B) {
	s, _ := loadState(b, simpleProgram())
	for i := 0; i < b.N; i++ {
		s.Read32(riscv.STACK_START + uint32(i*4)&0xffff)
	}
}

func BenchmarkWrite32(b *testing.B) {
	s, _ := loadState(b, simpleProgram())
	for i := 0; i < b.N; i++ {
		s.Write32(riscv.STACK_START+uint32(i*4)&0xffff, uint32(i))
	}
}
