package cpu

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Mem wraps the region table with byte-order aware accessors. Every access is
// bounds checked against the owning region's loaded extent; a miss is reported
// as a *MemError and never touches host memory outside a region buffer.
type Mem struct {
	Regions Regions

	order binary.ByteOrder
	// Mem.hooks is set when passing *Mem to NewHooks()
	hooks *Hooks
}

func NewMem(regions Regions, order binary.ByteOrder) *Mem {
	return &Mem{Regions: regions, order: order}
}

func (m *Mem) Order() binary.ByteOrder {
	return m.order
}

func (m *Mem) Translate(addr uint32) (int, uint32, bool) {
	return m.Regions.Translate(addr)
}

func (m *Mem) RangeValid(start, end uint32) bool {
	return m.Regions.RangeValid(start, end)
}

// span returns the slice backing [addr, addr+size), or nil if any byte of it
// falls outside the region holding addr.
func (m *Mem) span(addr uint32, size int) []byte {
	i, off, ok := m.Regions.Translate(addr)
	if !ok {
		return nil
	}
	r := m.Regions[i]
	if uint64(off)+uint64(size) > uint64(r.Size) {
		return nil
	}
	return r.Data[off : off+uint32(size)]
}

func (m *Mem) MemReadInto(p []byte, addr uint32) error {
	buf := m.span(addr, len(p))
	if buf == nil {
		return &MemError{Addr: addr, Size: len(p), Enum: MEM_READ_UNMAPPED}
	}
	copy(p, buf)
	return nil
}

// MemRead returns a copy of [addr, addr+size). The range is checked before
// anything is allocated.
func (m *Mem) MemRead(addr, size uint32) ([]byte, error) {
	buf := m.span(addr, int(size))
	if buf == nil {
		return nil, &MemError{Addr: addr, Size: int(size), Enum: MEM_READ_UNMAPPED}
	}
	p := make([]byte, size)
	copy(p, buf)
	return p, nil
}

func (m *Mem) MemWrite(addr uint32, p []byte) error {
	buf := m.span(addr, len(p))
	if buf == nil {
		return &MemError{Addr: addr, Size: len(p), Enum: MEM_WRITE_UNMAPPED}
	}
	copy(buf, p)
	return nil
}

// ReadUint decodes a size-byte value at addr. access is MEM_READ or MEM_FETCH
// and is only used to tell hooks what kind of access this was.
func (m *Mem) ReadUint(addr uint32, size, access int) (uint32, error) {
	if size > 4 {
		return 0, errors.Errorf("ReadUint size too large: %d > 4", size)
	}
	buf := m.span(addr, size)
	if buf == nil {
		merr := &MemError{Addr: addr, Size: size, Enum: unmappedEnum(access)}
		if m.hooks != nil {
			m.hooks.OnFault(merr.Enum, addr, size, 0)
		}
		return 0, merr
	}
	val, err := UnpackUint(m.order, size, buf)
	if err != nil {
		return 0, err
	}
	if m.hooks != nil {
		m.hooks.OnMem(access, addr, size, val)
	}
	return val, nil
}

// WriteUint encodes val into size bytes at addr. Nothing is written on a miss.
func (m *Mem) WriteUint(addr uint32, size int, val uint32) error {
	if size > 4 {
		return errors.Errorf("WriteUint size too large: %d > 4", size)
	}
	buf := m.span(addr, size)
	if buf == nil {
		merr := &MemError{Addr: addr, Size: size, Enum: MEM_WRITE_UNMAPPED}
		if m.hooks != nil {
			m.hooks.OnFault(merr.Enum, addr, size, val)
		}
		return merr
	}
	if _, err := PackUint(m.order, size, buf, val); err != nil {
		return err
	}
	if m.hooks != nil {
		m.hooks.OnMem(MEM_WRITE, addr, size, val)
	}
	return nil
}
