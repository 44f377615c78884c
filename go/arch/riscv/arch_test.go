package riscv

import (
	"testing"
)

func TestRegNames(t *testing.T) {
	table := []struct {
		name string
		enum int
	}{
		{"x0", REG_ZERO},
		{"zero", REG_ZERO},
		{"sp", REG_SP},
		{"x2", REG_SP},
		{"gp", REG_GP},
		{"fp", REG_FP},
		{"s0", REG_S0},
		{"s0/fp", REG_S0},
		{"a0", REG_A0},
		{"x10", REG_A0},
		{"t6", REG_T6},
		{"x31", REG_T6},
	}
	for _, v := range table {
		enum, ok := Arch.Lookup(v.name)
		if !ok {
			t.Errorf("%s not found", v.name)
		} else if enum != v.enum {
			t.Errorf("%s: got %d, want %d", v.name, enum, v.enum)
		}
	}
	if _, ok := Arch.Lookup("x32"); ok {
		t.Error("x32 should not resolve")
	}
	if _, ok := Arch.Lookup("32"); ok {
		t.Error("32 should not resolve")
	}
	if enum, ok := Arch.Lookup("17"); !ok || enum != REG_A7 {
		t.Errorf("numeric lookup: got %d %v", enum, ok)
	}
}

func TestLayoutOrder(t *testing.T) {
	bounds := []uint64{USER_TEXT_START, USER_DATA_START, STACK_START, STACK_END, KERNEL_TEXT_START, KERNEL_DATA_START}
	for i := 1; i < len(bounds); i++ {
		if bounds[i-1] >= bounds[i] {
			t.Fatalf("layout constants out of order at %d: %#x >= %#x", i, bounds[i-1], bounds[i])
		}
	}
}

func TestLayout(t *testing.T) {
	rs := Layout()
	if err := rs.Check(); err != nil {
		t.Fatal(err)
	}
	if rs[STACK].Addr+rs[STACK].MaxSize != STACK_END {
		t.Errorf("stack ends at %#x, want %#x", rs[STACK].Addr+rs[STACK].MaxSize, STACK_END)
	}
	if !rs[STACK].Anonymous() {
		t.Error("stack should not be file backed")
	}
	for _, i := range []int{TEXT, DATA, KTEXT, KDATA} {
		if rs[i].Anonymous() {
			t.Errorf("%s has no record file suffix", rs[i].Desc)
		}
	}
	if rs[KDATA].Limit() != 0xffffffff {
		t.Errorf("kdata limit = %#x", rs[KDATA].Limit())
	}
	// tables are independent
	rs[TEXT].Alloc(4)
	if Layout()[TEXT].Loaded() {
		t.Error("Layout() shares regions between calls")
	}
}
