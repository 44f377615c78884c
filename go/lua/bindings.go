package lua

import (
	"strconv"

	"github.com/lunixbochs/luaish"
	"github.com/lunixbochs/luaish-luar"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

var cpuEnums = map[string]lua.LInt{
	"HOOK_CODE":      cpu.HOOK_CODE,
	"HOOK_MEM_READ":  cpu.HOOK_MEM_READ,
	"HOOK_MEM_WRITE": cpu.HOOK_MEM_WRITE,
	"HOOK_MEM_FETCH": cpu.HOOK_MEM_FETCH,
	"HOOK_MEM_ERR":   cpu.HOOK_MEM_ERR,

	"MEM_WRITE_UNMAPPED": cpu.MEM_WRITE_UNMAPPED,
	"MEM_READ_UNMAPPED":  cpu.MEM_READ_UNMAPPED,
	"MEM_FETCH_UNMAPPED": cpu.MEM_FETCH_UNMAPPED,

	"MEM_WRITE": cpu.MEM_WRITE,
	"MEM_READ":  cpu.MEM_READ,
	"MEM_FETCH": cpu.MEM_FETCH,
}

func (L *LuaRepl) printFunc(_ *lua.LState) int {
	L.PrettyPrint(L.getArgs(), false)
	return 0
}

func (L *LuaRepl) intFunc(_ *lua.LState) int {
	switch v := L.CheckAny(1).(type) {
	case lua.LString:
		n, err := strconv.ParseInt(string(v), 0, 64)
		if err == nil {
			L.Push(lua.LInt(n))
			return 1
		}
	case lua.LFloat:
		L.Push(lua.LInt(v))
		return 1
	case lua.LInt:
		L.Push(v)
		return 1
	}
	return 0
}

// this injects enums from models/cpu
func (L *LuaRepl) bindCpu() {
	mod := L.NewTable()
	for k, v := range cpuEnums {
		mod.RawSetString(k, v)
	}
	L.SetGlobal("cpu", mod)
}

func (L *LuaRepl) loadBindings() error {
	L.SetGlobal("print", L.NewFunction(L.printFunc))
	L.SetGlobal("int", L.NewFunction(L.intFunc))
	L.bindCpu()

	mod := L.SetFuncs(L.NewTable(), L.stateExports())
	L.SetGlobal("u", mod)
	// raw access to the State for anything the helpers don't cover
	L.SetGlobal("state", luar.New(L.LState, L.s))

	if err := L.DoString(sugarRc); err != nil {
		return err
	} else if err := L.DoString(cmdRc); err != nil {
		return err
	}
	return nil
}
