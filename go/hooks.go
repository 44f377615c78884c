package rvsim

import (
	"fmt"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

func (s *State) addHooks() {
	out := s.config.Output
	if s.config.TraceExec {
		s.Hooks.HookAdd(cpu.HOOK_CODE, func(addr, size uint32) {
			// MemRead bypasses the memory hooks
			buf, err := s.Mem.MemRead(addr, size)
			if err != nil || len(buf) < 4 {
				fmt.Fprintf(out, "0x%08x: ????????\n", addr)
				return
			}
			fmt.Fprintf(out, "0x%08x: %08x\n", addr, s.Mem.Order().Uint32(buf))
		}, 1, 0)
	}
	if s.config.TraceMem {
		s.Hooks.HookAdd(cpu.HOOK_MEM_READ|cpu.HOOK_MEM_WRITE, func(access int, addr uint32, size int, val uint32) {
			if access == cpu.MEM_WRITE {
				fmt.Fprintf(out, "MEM_WRITE")
			} else {
				fmt.Fprintf(out, "MEM_READ")
			}
			fmt.Fprintf(out, " 0x%08x %d 0x%08x\n", addr, size, val)
		}, 1, 0)
	}
}
