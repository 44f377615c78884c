package riscv

import (
	"github.com/lunixbochs/rvsim/go/models/cpu"
)

// Memory layout shared with the toolchain that produces the .hex record files.
// Both sides must agree on these values bit for bit.
const (
	USER_TEXT_START   = 0x00400000
	USER_DATA_START   = 0x10000000
	STACK_END         = 0x7ff00000
	STACK_SIZE        = 0x00100000
	STACK_START       = STACK_END - STACK_SIZE
	KERNEL_TEXT_START = 0x80000000
	KERNEL_DATA_START = 0x90000000
)

// record file suffixes, appended to the program path
const (
	TEXT_EXT  = ".text.hex"
	DATA_EXT  = ".data.hex"
	KTEXT_EXT = ".ktext.hex"
	KDATA_EXT = ".kdata.hex"
)

// value passed in a0 to ECALL to halt the processor
const ECALL_ARG_HALT = 0xa

// ECALL instruction encoding
const ECALL = 0x00000073

// region indices into the table returned by Layout
const (
	TEXT = iota
	DATA
	STACK
	KTEXT
	KDATA
)

// Layout builds a fresh, unloaded region table. Text and data may grow up to
// the next region's base; the stack always occupies exactly STACK_SIZE bytes
// directly below STACK_END.
func Layout() cpu.Regions {
	return cpu.Regions{
		TEXT:  {Addr: USER_TEXT_START, MaxSize: USER_DATA_START - USER_TEXT_START, Ext: TEXT_EXT, Desc: "text"},
		DATA:  {Addr: USER_DATA_START, MaxSize: STACK_START - USER_DATA_START, Ext: DATA_EXT, Desc: "data"},
		STACK: {Addr: STACK_START, MaxSize: STACK_SIZE, Desc: "stack"},
		KTEXT: {Addr: KERNEL_TEXT_START, MaxSize: KERNEL_DATA_START - KERNEL_TEXT_START, Ext: KTEXT_EXT, Desc: "ktext"},
		KDATA: {Addr: KERNEL_DATA_START, MaxSize: 0xffffffff - KERNEL_DATA_START, Ext: KDATA_EXT, Desc: "kdata"},
	}
}
