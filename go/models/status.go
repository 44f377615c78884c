package models

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
)

type RegDumper interface {
	RegDump() ([]RegVal, error)
}

// StatusDiff remembers the register file between dumps so changed values can
// be highlighted.
type StatusDiff struct {
	Arch    *Arch
	Dumper  RegDumper
	oldRegs map[int]uint32
}

var chSame = ansi.ColorCode("default:default")
var chNew = ansi.ColorCode("default+bu:default")

type ChangeMask struct {
	Old, New string
	Changed  bool
}

type Change struct {
	Old, New uint32
	Enum     int
	Name     string
	Abi      string
}

func (c *Change) Changed() bool {
	return c.Old != c.New
}

// Mask splits the hex digits of New into runs that do or do not differ from Old.
func (c *Change) Mask() []ChangeMask {
	s1, s2 := fmt.Sprintf("%08x", c.New), fmt.Sprintf("%08x", c.Old)
	pos := 0
	matching := true
	masks := make([]ChangeMask, 0, len(s1))
	for i := range s1 {
		if (s1[i] == s2[i]) != matching {
			if i > pos {
				masks = append(masks, ChangeMask{
					New:     s1[pos:i],
					Old:     s2[pos:i],
					Changed: !matching,
				})
				pos = i
			}
			matching = !matching
		}
	}
	if pos < len(s1) {
		masks = append(masks, ChangeMask{
			New:     s1[pos:],
			Old:     s2[pos:],
			Changed: !matching,
		})
	}
	return masks
}

// String formats one register the way rdump prints it:
// isa (abi) = 0xhex (signed) (unsigned)
func (c *Change) String(color bool) string {
	val := fmt.Sprintf("%08x", c.New)
	if color && c.Changed() {
		var out []string
		for _, mask := range c.Mask() {
			col := chSame
			if mask.Changed {
				col = chNew
			}
			out = append(out, col+mask.New)
		}
		val = strings.Join(out, "") + ansi.Reset
	}
	return fmt.Sprintf("%-3s %-7s = 0x%s %-12s %-12s",
		c.Name, "("+c.Abi+")", val,
		fmt.Sprintf("(%d)", int32(c.New)), fmt.Sprintf("(%d)", c.New))
}

type Changes struct {
	Changes []*Change
}

func (cs *Changes) String(color bool) string {
	out := make([]string, len(cs.Changes))
	for i, c := range cs.Changes {
		out[i] = strings.TrimRight(c.String(color), " ")
	}
	return strings.Join(out, "\n")
}

func (cs *Changes) Changed() []*Change {
	ret := make([]*Change, 0, cs.Count())
	for _, c := range cs.Changes {
		if c.Changed() {
			ret = append(ret, c)
		}
	}
	return ret
}

func (cs *Changes) Count() int {
	ret := 0
	for _, c := range cs.Changes {
		if c.Changed() {
			ret += 1
		}
	}
	return ret
}

func (cs *Changes) Find(enum int) *Change {
	for _, c := range cs.Changes {
		if c.Enum == enum {
			return c
		}
	}
	return nil
}

// Changes dumps the register file, diffed against the previous call.
func (s *StatusDiff) Changes(onlyChanged bool) (*Changes, error) {
	regs, err := s.Dumper.RegDump()
	if err != nil {
		return nil, err
	}
	cs := make([]*Change, 0, len(regs))
	for _, reg := range regs {
		var oldReg uint32
		if s.oldRegs != nil {
			oldReg = s.oldRegs[reg.Enum]
		}
		change := &Change{Old: oldReg, New: reg.Val, Enum: reg.Enum, Name: reg.Name}
		if s.Arch != nil && reg.Enum < len(s.Arch.Names) {
			change.Abi = s.Arch.Names[reg.Enum].Abi
		}
		if !onlyChanged || change.Changed() {
			cs = append(cs, change)
		}
	}
	s.oldRegs = make(map[int]uint32, len(regs))
	for _, r := range regs {
		s.oldRegs[r.Enum] = r.Val
	}
	return &Changes{Changes: cs}, nil
}
