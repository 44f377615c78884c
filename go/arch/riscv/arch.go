package riscv

import (
	"strconv"

	"github.com/lunixbochs/rvsim/go/models"
)

const (
	REG_ZERO = iota
	REG_RA
	REG_SP
	REG_GP
	REG_TP
	REG_T0
	REG_T1
	REG_T2
	REG_S0
	REG_S1
	REG_A0
	REG_A1
	REG_A2
	REG_A3
	REG_A4
	REG_A5
	REG_A6
	REG_A7
	REG_S2
	REG_S3
	REG_S4
	REG_S5
	REG_S6
	REG_S7
	REG_S8
	REG_S9
	REG_S10
	REG_S11
	REG_T3
	REG_T4
	REG_T5
	REG_T6

	NUM_REGS
)

// frame pointer aliases s0
const REG_FP = REG_S0

// ABI aliases, indexed by register number
var abiNames = [NUM_REGS]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0/fp", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

var Arch = &models.Arch{
	Bits: 32,
	SP:   REG_SP,
	GP:   REG_GP,
	Regs: regMap(),
	Names: func() []models.RegName {
		names := make([]models.RegName, NUM_REGS)
		for i := range names {
			names[i] = models.RegName{Isa: isaName(i), Abi: abiNames[i]}
		}
		return names
	}(),
}

func isaName(i int) string {
	return "x" + strconv.Itoa(i)
}

// every spelling a register can be referred to by: x5, t0, and s0/fp as s0 and fp
func regMap() map[string]int {
	m := make(map[string]int, NUM_REGS*2+1)
	for i := 0; i < NUM_REGS; i++ {
		m[isaName(i)] = i
		m[abiNames[i]] = i
	}
	m["s0"] = REG_S0
	m["fp"] = REG_FP
	return m
}
