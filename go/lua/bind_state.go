package lua

import (
	"github.com/lunixbochs/luaish"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

func (L *LuaRepl) stateExports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"read32":  L.read32,
		"write32": L.write32,

		"mem_read":  L.memRead,
		"mem_write": L.memWrite,

		"reg":    L.reg,
		"pc":     L.pc,
		"step":   L.step,
		"halted": L.halted,

		"maps": L.maps,

		"hook_add": L.hookAdd,
		"hook_del": L.hookDel,
	}
}

func (L *LuaRepl) checkUint32(n int) uint32 {
	return uint32(L.CheckUint64(n))
}

func (L *LuaRepl) checkErr(err error) {
	if err != nil {
		L.RaiseError("%s", err)
	}
}

// read32(addr) follows the simulator's fault policy: a bad address halts and reads 0.
func (L *LuaRepl) read32(_ *lua.LState) int {
	L.Push(lua.LInt(L.s.Read32(L.checkUint32(1))))
	return 1
}

func (L *LuaRepl) write32(_ *lua.LState) int {
	L.s.Write32(L.checkUint32(1), L.checkUint32(2))
	return 0
}

// mem_read(addr, size) returns a string and raises on a bad address.
func (L *LuaRepl) memRead(_ *lua.LState) int {
	mem, err := L.s.MemRead(L.checkUint32(1), L.checkUint32(2))
	L.checkErr(err)
	L.Push(lua.LString(mem))
	return 1
}

func (L *LuaRepl) memWrite(_ *lua.LState) int {
	addr := L.checkUint32(1)
	data := L.CheckString(2)
	L.checkErr(L.s.MemWrite(addr, []byte(data)))
	return 0
}

// reg(name) reads a register, reg(name, val) writes it.
func (L *LuaRepl) reg(_ *lua.LState) int {
	name := L.CheckString(1)
	enum, ok := L.s.Arch().Lookup(name)
	if !ok {
		L.RaiseError("invalid register '%s'", name)
		return 0
	}
	if L.GetTop() >= 2 {
		L.checkErr(L.s.RegWrite(enum, L.checkUint32(2)))
		L.EnvToLua()
		return 0
	}
	val, err := L.s.RegRead(enum)
	L.checkErr(err)
	L.Push(lua.LInt(val))
	return 1
}

// pc() reads the pc, pc(addr) sets it.
func (L *LuaRepl) pc(_ *lua.LState) int {
	if L.GetTop() >= 1 {
		L.s.SetPC(L.checkUint32(1))
		L.EnvToLua()
		return 0
	}
	L.Push(lua.LInt(L.s.PC()))
	return 1
}

// step([n]) runs n instructions (default 1) and returns the number executed.
func (L *LuaRepl) step(_ *lua.LState) int {
	n := uint32(1)
	if L.GetTop() >= 1 {
		n = L.checkUint32(1)
	}
	// registers may have been assigned as globals since the last sync
	L.EnvFromLua()
	count, err := L.s.Step(uint64(n))
	L.EnvToLua()
	L.checkErr(err)
	L.Push(lua.LInt(count))
	return 1
}

func (L *LuaRepl) halted(_ *lua.LState) int {
	L.Push(lua.LBool(L.s.IsHalted()))
	return 1
}

func (L *LuaRepl) maps(_ *lua.LState) int {
	L.Push(lua.LString(L.s.Mem.Regions.String()))
	return 1
}

// hook_add(type, fn[, start, end]) returns a hook id for hook_del.
// Code hooks are called with (addr, size); memory and fault hooks with
// (access, addr, size, value).
func (L *LuaRepl) hookAdd(_ *lua.LState) int {
	htype := int(L.checkUint32(1))
	fn, ok := L.CheckAny(2).(*lua.LFunction)
	if !ok {
		L.RaiseError("argument 2: expected a function")
		return 0
	}
	start, end := uint32(1), uint32(0)
	if L.GetTop() >= 4 {
		start, end = L.checkUint32(3), L.checkUint32(4)
	}
	var cb interface{}
	if htype == cpu.HOOK_CODE {
		cb = func(addr, size uint32) {
			L.callHook(fn, lua.LInt(addr), lua.LInt(size))
		}
	} else {
		cb = func(access int, addr uint32, size int, val uint32) {
			L.callHook(fn, lua.LInt(access), lua.LInt(addr), lua.LInt(size), lua.LInt(val))
		}
	}
	hh, err := L.s.Hooks.HookAdd(htype, cb, start, end)
	L.checkErr(err)
	L.nextID++
	L.hooks[L.nextID] = hh
	L.Push(lua.LInt(L.nextID))
	return 1
}

func (L *LuaRepl) hookDel(_ *lua.LState) int {
	id := int(L.checkUint32(1))
	if hh, ok := L.hooks[id]; ok {
		L.checkErr(L.s.Hooks.HookDel(hh))
		delete(L.hooks, id)
	}
	return 0
}

// hooks fire from inside the simulator, so errors are printed, not raised
func (L *LuaRepl) callHook(fn *lua.LFunction, args ...lua.LValue) {
	top := L.GetTop()
	L.Push(fn)
	for _, arg := range args {
		L.Push(arg)
	}
	if err := L.PCall(len(args), 0, nil); err != nil {
		L.Println(err)
	}
	L.SetTop(top)
}
