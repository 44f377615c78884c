package trace

import (
	"fmt"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

const (
	OP_NOP         = 0
	OP_MEM_READ    = 1
	OP_MEM_WRITE   = 2
	OP_MEM_FETCH   = 3
	OP_FAULT_READ  = 4
	OP_FAULT_WRITE = 5
	OP_FAULT_FETCH = 6
)

var opNames = map[uint8]string{
	OP_NOP:         "nop",
	OP_MEM_READ:    "read",
	OP_MEM_WRITE:   "write",
	OP_MEM_FETCH:   "fetch",
	OP_FAULT_READ:  "fault_read",
	OP_FAULT_WRITE: "fault_write",
	OP_FAULT_FETCH: "fault_fetch",
}

// Frame is one memory access. PC is the instruction that made it.
type Frame struct {
	Op    uint8  `json:"-"`
	Size  uint8  `json:"size"`
	PC    uint32 `json:"pc"`
	Addr  uint32 `json:"addr"`
	Value uint32 `json:"value"`

	Name string `struc:"skip" json:"op"`
}

func (f *Frame) OpName() string {
	if name, ok := opNames[f.Op]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", f.Op)
}

func (f *Frame) Fault() bool {
	return f.Op >= OP_FAULT_READ && f.Op <= OP_FAULT_FETCH
}

func (f *Frame) String() string {
	return fmt.Sprintf("0x%08x: %-11s 0x%08x %d 0x%08x", f.PC, f.OpName(), f.Addr, f.Size, f.Value)
}

func accessOp(access int) uint8 {
	switch access {
	case cpu.MEM_READ:
		return OP_MEM_READ
	case cpu.MEM_WRITE:
		return OP_MEM_WRITE
	case cpu.MEM_FETCH:
		return OP_MEM_FETCH
	}
	return OP_NOP
}

func faultOp(enum int) uint8 {
	switch enum {
	case cpu.MEM_READ_UNMAPPED:
		return OP_FAULT_READ
	case cpu.MEM_WRITE_UNMAPPED:
		return OP_FAULT_WRITE
	case cpu.MEM_FETCH_UNMAPPED:
		return OP_FAULT_FETCH
	}
	return OP_NOP
}
