package models

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lunixbochs/fvbommel-util/sortorder"
)

type Reg struct {
	Enum int
	Name string
}

type RegVal struct {
	Reg
	Val uint32
}

type regList []Reg

func (r regList) Len() int           { return len(r) }
func (r regList) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r regList) Less(i, j int) bool { return sortorder.NaturalLess(r[i].Name, r[j].Name) }

// RegName holds the ISA name (x0..x31) and ABI alias (zero, ra, sp...) of a register.
type RegName struct {
	Isa, Abi string
}

type RegReader interface {
	RegRead(enum int) (uint32, error)
}

type Arch struct {
	Bits int
	SP   int
	GP   int
	// every accepted spelling of a register name
	Regs map[string]int
	// indexed by register number
	Names []RegName

	// sorted for RegDump
	regList regList
}

// Lookup resolves a register by ISA name, ABI alias or decimal number.
func (a *Arch) Lookup(name string) (int, bool) {
	if n, err := strconv.Atoi(name); err == nil {
		return n, n >= 0 && n < len(a.Names)
	}
	enum, ok := a.Regs[strings.ToLower(name)]
	return enum, ok
}

func (a *Arch) RegDump(r RegReader) ([]RegVal, error) {
	if a.regList == nil {
		rl := make(regList, len(a.Names))
		for i, n := range a.Names {
			rl[i] = Reg{i, n.Isa}
		}
		sort.Sort(rl)
		a.regList = rl
	}
	ret := make([]RegVal, len(a.regList))
	for i, reg := range a.regList {
		val, err := r.RegRead(reg.Enum)
		if err != nil {
			return nil, err
		}
		ret[i] = RegVal{reg, val}
	}
	return ret, nil
}
