package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// Region is one fixed, contiguous span of the simulated address space.
// Addr, MaxSize and Ext never change once the layout is built; Size and Data
// track what the current program load allocated.
type Region struct {
	Addr    uint32
	MaxSize uint32
	Size    uint32
	Data    []byte

	// record file suffix; empty for anonymous regions
	Ext  string
	Desc string
}

// End is one past the last addressable byte. It is computed in 64 bits so a
// region ending exactly at 4GiB does not wrap.
func (r *Region) End() uint64 {
	return uint64(r.Addr) + uint64(r.Size)
}

// Limit is one past the last byte the region could ever hold.
func (r *Region) Limit() uint64 {
	return uint64(r.Addr) + uint64(r.MaxSize)
}

func (r *Region) Anonymous() bool {
	return r.Ext == ""
}

func (r *Region) Loaded() bool {
	return r.Data != nil
}

// Contains bounds on Size, so headroom up to MaxSize is never addressable.
func (r *Region) Contains(addr uint32) bool {
	return addr >= r.Addr && uint64(addr) < r.End()
}

// ContainsRange checks the closed span [start, end].
func (r *Region) ContainsRange(start, end uint32) bool {
	return start <= end && r.Contains(start) && uint64(end) < r.End()
}

// Alloc replaces the backing buffer with size zeroed bytes.
func (r *Region) Alloc(size uint32) error {
	if size > r.MaxSize {
		return errors.Errorf("%s: size %#x exceeds region capacity %#x", r.Desc, size, r.MaxSize)
	}
	r.Data = make([]byte, size)
	r.Size = size
	return nil
}

func (r *Region) Free() {
	r.Data = nil
	r.Size = 0
}

func (r *Region) String() string {
	desc := fmt.Sprintf("0x%08x-0x%08x", r.Addr, r.End())
	if r.Desc != "" {
		desc += fmt.Sprintf(" [%s]", r.Desc)
	}
	if r.Ext != "" {
		desc += " " + r.Ext
	}
	return desc + fmt.Sprintf(" (%#x/%#x)", r.Size, r.MaxSize)
}
