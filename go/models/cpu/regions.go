package cpu

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const NUM_REGIONS = 5

type MemError struct {
	Addr uint32
	Size int
	Enum int
}

func (m *MemError) Error() string {
	reason := "memory error"
	switch m.Enum {
	case MEM_WRITE_UNMAPPED:
		reason = "unmapped write"
	case MEM_READ_UNMAPPED:
		reason = "unmapped read"
	case MEM_FETCH_UNMAPPED:
		reason = "unmapped fetch"
	}
	return fmt.Sprintf("%s at %#x(%d)", reason, m.Addr, m.Size)
}

// Regions is the fixed table of memory regions, in ascending address order.
type Regions [NUM_REGIONS]*Region

// Check verifies the table is ordered and that no two regions could ever
// overlap, even when grown to MaxSize. Translate returns the first match, so
// an overlap would silently shadow the later region.
func (rs Regions) Check() error {
	var prev *Region
	for i, r := range rs {
		if r == nil {
			return errors.Errorf("region %d is missing", i)
		}
		if r.Size > r.MaxSize {
			return errors.Errorf("%s: size %#x exceeds capacity %#x", r.Desc, r.Size, r.MaxSize)
		}
		if r.Limit() > 1<<32 {
			return errors.Errorf("%s: %#x+%#x overflows the address space", r.Desc, r.Addr, r.MaxSize)
		}
		if prev != nil && prev.Limit() > uint64(r.Addr) {
			return errors.Errorf("%s overlaps %s", prev.Desc, r.Desc)
		}
		prev = r
	}
	return nil
}

// Translate maps addr to the index of its region and the offset into that
// region's buffer.
func (rs Regions) Translate(addr uint32) (int, uint32, bool) {
	for i, r := range rs {
		if r.Contains(addr) {
			return i, addr - r.Addr, true
		}
	}
	return -1, 0, false
}

func (rs Regions) Find(addr uint32) *Region {
	if i, _, ok := rs.Translate(addr); ok {
		return rs[i]
	}
	return nil
}

// RangeValid reports whether the closed span [start, end] lies inside a
// single region's loaded extent.
func (rs Regions) RangeValid(start, end uint32) bool {
	if start >= end {
		return false
	}
	for _, r := range rs {
		if r.ContainsRange(start, end) {
			return true
		}
	}
	return false
}

func (rs Regions) Free() {
	for _, r := range rs {
		if r != nil {
			r.Free()
		}
	}
}

func (rs Regions) Loaded() bool {
	for _, r := range rs {
		if r != nil && r.Loaded() {
			return true
		}
	}
	return false
}

func (rs Regions) String() string {
	s := make([]string, 0, len(rs))
	for _, r := range rs {
		s = append(s, r.String())
	}
	return strings.Join(s, "\n")
}
