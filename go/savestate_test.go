package rvsim

import (
	"path/filepath"
	"testing"

	"github.com/lunixbochs/rvsim/go/arch/riscv"
	"github.com/lunixbochs/rvsim/go/models"
)

func TestSaveRestore(t *testing.T) {
	s, _ := loadState(t, simpleProgram())
	s.Write32(riscv.STACK_END-4, 0xcafebabe)
	s.RegWrite(riscv.REG_A0, 42)
	s.SetPC(riscv.USER_TEXT_START + 4)
	s.InsCount = 7
	path := filepath.Join(t.TempDir(), "state.sav")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}

	fresh, _ := newState(t)
	if err := fresh.Restore(path); err != nil {
		t.Fatal(err)
	}
	if fresh.PC() != riscv.USER_TEXT_START+4 || fresh.InsCount != 7 {
		t.Fatalf("pc=%#x count=%d", fresh.PC(), fresh.InsCount)
	}
	if a0, _ := fresh.RegRead(riscv.REG_A0); a0 != 42 {
		t.Errorf("a0 = %d", a0)
	}
	if fresh.Read32(riscv.STACK_END-4) != 0xcafebabe || fresh.Read32(riscv.USER_DATA_START) != 0xdeadbeef {
		t.Error("memory not restored")
	}
	if fresh.Mem.Regions[riscv.TEXT].Size != 12 {
		t.Errorf("text size = %d", fresh.Mem.Regions[riscv.TEXT].Size)
	}
	if !fresh.Loaded() || fresh.Halted {
		t.Error("restored state is not runnable")
	}
}

func TestApplyRejects(t *testing.T) {
	s, _ := loadState(t, simpleProgram())
	good := s.Snapshot()
	table := map[string]func(*models.Snapshot){
		"regs":    func(sn *models.Snapshot) { sn.Regs = sn.Regs[:5] },
		"regions": func(sn *models.Snapshot) { sn.Regions = sn.Regions[:4] },
		"base":    func(sn *models.Snapshot) { sn.Regions[1].Addr += 4 },
		"stack": func(sn *models.Snapshot) {
			sn.Regions[riscv.STACK].Size = 4
			sn.Regions[riscv.STACK].Data = sn.Regions[riscv.STACK].Data[:4]
		},
		"length": func(sn *models.Snapshot) { sn.Regions[0].Size = 16 },
	}
	for name, mangle := range table {
		target, _ := loadState(t, simpleProgram())
		target.Write32(riscv.USER_DATA_START, 1)
		snap := s.Snapshot()
		mangle(snap)
		if err := target.Apply(snap); err == nil {
			t.Errorf("%s: bad snapshot applied", name)
		}
		if target.Read32(riscv.USER_DATA_START) != 1 {
			t.Errorf("%s: rejected snapshot modified memory", name)
		}
	}
	if err := s.Apply(good); err != nil {
		t.Fatal(err)
	}
}

func TestSaveUnloaded(t *testing.T) {
	s, _ := newState(t)
	if err := s.Save(filepath.Join(t.TempDir(), "x.sav")); err == nil {
		t.Fatal("saved an unloaded state")
	}
}
