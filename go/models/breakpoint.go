package models

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

var breakRe = regexp.MustCompile(`^\*?(0x[0-9a-fA-F]+|\d+)$`)

var BreakpointParseErr = fmt.Errorf("breakpoint parse failed")

type Breakpoint struct {
	ID   int
	Addr uint32
	// times execution stopped here
	Hits uint64
}

func (b *Breakpoint) String() string {
	return fmt.Sprintf("%d: 0x%08x (%d hits)", b.ID, b.Addr, b.Hits)
}

// ParseBreakpoint accepts an address as 0xADDR, *0xADDR or decimal.
func ParseBreakpoint(desc string) (uint32, error) {
	r := breakRe.FindStringSubmatch(desc)
	if len(r) == 0 {
		return 0, errors.Wrapf(BreakpointParseErr, "%q", desc)
	}
	addr, err := strconv.ParseUint(r[1], 0, 32)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse int")
	}
	return uint32(addr), nil
}

// Breakpoints is a set of execution breakpoints keyed by address.
type Breakpoints struct {
	byAddr map[uint32]*Breakpoint
	nextID int
}

func NewBreakpoints() *Breakpoints {
	return &Breakpoints{byAddr: make(map[uint32]*Breakpoint)}
}

// Add returns the existing breakpoint if addr already has one.
func (b *Breakpoints) Add(addr uint32) *Breakpoint {
	if bp, ok := b.byAddr[addr]; ok {
		return bp
	}
	b.nextID++
	bp := &Breakpoint{ID: b.nextID, Addr: addr}
	b.byAddr[addr] = bp
	return bp
}

func (b *Breakpoints) Del(id int) error {
	for addr, bp := range b.byAddr {
		if bp.ID == id {
			delete(b.byAddr, addr)
			return nil
		}
	}
	return errors.Errorf("no breakpoint %d", id)
}

func (b *Breakpoints) Lookup(addr uint32) *Breakpoint {
	return b.byAddr[addr]
}

// List returns breakpoints in creation order.
func (b *Breakpoints) List() []*Breakpoint {
	list := make([]*Breakpoint, 0, len(b.byAddr))
	for _, bp := range b.byAddr {
		list = append(list, bp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (b *Breakpoints) Len() int {
	return len(b.byAddr)
}
