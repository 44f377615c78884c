package cpu

import (
	"testing"
)

func TestRegs(t *testing.T) {
	regs := NewRegs(32)
	for i := 0; i < regs.Count(); i++ {
		if err := regs.RegWrite(i, uint32(i)*0x01010101); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < regs.Count(); i++ {
		if val, err := regs.RegRead(i); err != nil || val != uint32(i)*0x01010101 {
			t.Fatalf("reg %d = %#x, %v", i, val, err)
		}
	}
	if _, err := regs.RegRead(32); err == nil {
		t.Error("read past the register file succeeded")
	}
	if err := regs.RegWrite(-1, 0); err == nil {
		t.Error("write to a negative register succeeded")
	}
}

func TestRegsContext(t *testing.T) {
	regs := NewRegs(4)
	regs.RegWrite(1, 0x10)
	regs.RegWrite(3, 0x30)
	ctx := regs.ContextSave()
	regs.Reset()
	if val, _ := regs.RegRead(3); val != 0 {
		t.Fatal("Reset() left a value behind")
	}
	if err := regs.ContextRestore(ctx); err != nil {
		t.Fatal(err)
	}
	if val, _ := regs.RegRead(1); val != 0x10 {
		t.Fatalf("restored reg 1 = %#x", val)
	}
	if err := regs.ContextRestore(make([]uint32, 5)); err == nil {
		t.Error("ContextRestore accepted a mismatched context")
	}
}
