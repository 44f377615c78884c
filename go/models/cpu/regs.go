package cpu

import (
	"github.com/pkg/errors"
)

// Regs is a flat general purpose register file.
type Regs struct {
	vals []uint32
}

func NewRegs(count int) *Regs {
	return &Regs{vals: make([]uint32, count)}
}

func (r *Regs) Count() int {
	return len(r.vals)
}

func (r *Regs) RegRead(enum int) (uint32, error) {
	if enum < 0 || enum >= len(r.vals) {
		return 0, errors.Errorf("invalid register: %d", enum)
	}
	return r.vals[enum], nil
}

func (r *Regs) RegWrite(enum int, val uint32) error {
	if enum < 0 || enum >= len(r.vals) {
		return errors.Errorf("invalid register: %d", enum)
	}
	r.vals[enum] = val
	return nil
}

func (r *Regs) Reset() {
	for i := range r.vals {
		r.vals[i] = 0
	}
}

func (r *Regs) ContextSave() []uint32 {
	ctx := make([]uint32, len(r.vals))
	copy(ctx, r.vals)
	return ctx
}

func (r *Regs) ContextRestore(ctx []uint32) error {
	if len(ctx) != len(r.vals) {
		return errors.Errorf("incorrect context size: %d != %d", len(ctx), len(r.vals))
	}
	copy(r.vals, ctx)
	return nil
}
