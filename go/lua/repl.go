package lua

import (
	"fmt"
	"io"
	"strings"

	"github.com/lunixbochs/luaish"
	"github.com/lunixbochs/luaish/parse"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	rvsim "github.com/lunixbochs/rvsim/go"
	"github.com/lunixbochs/rvsim/go/models"
)

type LuaRepl struct {
	*lua.LState
	s *rvsim.State
	io.Writer

	preRegs []models.RegVal
	hooks   map[int]interface{}
	nextID  int
}

// Return a new lua interpreter bound to a simulator state.
func NewRepl(s *rvsim.State, o io.Writer) (*LuaRepl, error) {
	repl := &LuaRepl{
		LState: lua.NewState(),
		s:      s,
		Writer: o,
		hooks:  make(map[int]interface{}),
	}
	if err := repl.loadBindings(); err != nil {
		return nil, errors.Wrap(err, "failed to load lua bindings")
	}
	configDirs := configdir.New("rvsim", "lua")
	for _, config := range configDirs.QueryFolders(configdir.All) {
		if data, err := config.ReadFile("init.lish"); err == nil {
			if err := repl.DoString(string(data)); err != nil {
				repl.Printf("error while reading init.lish: %v\n", err)
			}
		}
	}
	return repl, nil
}

// Close drops any hooks the scripts installed, then closes the lua state.
func (L *LuaRepl) Close() {
	for id, hh := range L.hooks {
		L.s.Hooks.HookDel(hh)
		delete(L.hooks, id)
	}
	L.LState.Close()
}

// Writes simulator state to lua globals.
func (L *LuaRepl) EnvToLua() {
	vals, err := L.s.RegDump()
	if err != nil {
		L.Printf("error in RegDump(): %v\n", err)
		return
	}
	L.preRegs = vals
	for _, r := range vals {
		L.SetGlobal(r.Name, lua.LInt(r.Val))
	}
	L.SetGlobal("pc", lua.LInt(L.s.PC()))
}

// Restores simulator state from lua globals.
func (L *LuaRepl) EnvFromLua() {
	for _, r := range L.preRegs {
		v := L.GetGlobal(r.Name)
		if val, ok := v.(lua.LInt); !ok {
			L.Printf("could not restore %s: bad type: %v\n", r.Name, v)
		} else if uint32(val) != r.Val {
			L.s.RegWrite(r.Enum, uint32(val))
		}
	}
	if pc, ok := L.GetGlobal("pc").(lua.LInt); ok && uint32(pc) != L.s.PC() {
		L.s.SetPC(uint32(pc))
	}
}

func (L *LuaRepl) postRun(lv []lua.LValue) {
	// ignore len(1) if nil, otherwise print all values
	if len(lv) == 1 && lv[0] == lua.LNil {
	} else if len(lv) > 0 {
		L.PrettyPrint(lv, true)
	}

	// set the _ global
	if len(lv) == 1 {
		L.SetGlobal("_", lv[0])
	} else if len(lv) > 1 {
		tmp := L.NewTable()
		for i, v := range lv {
			L.RawSetInt(tmp, i+1, v)
		}
		L.SetGlobal("_", tmp)
	} else {
		L.SetGlobal("_", lua.LNil)
	}
	L.EnvFromLua()
}

func (L *LuaRepl) loadstring(lines []string, recurse bool) (*lua.LFunction, error, bool) {
	code := strings.Join(lines, "\n")
	if len(lines) == 1 && recurse {
		code = "return " + code
	}
	if fn, err := L.LoadString(code); err != nil {
		// check for incomplete parse
		if lerr, ok := err.(*lua.ApiError); ok {
			if perr, ok := lerr.Cause.(*parse.Error); ok {
				if perr.Pos.Line == parse.EOF {
					return nil, err, true
				} else if recurse {
					// still a parse error: try without return
					return L.loadstring(lines, false)
				}
			}
		}
		return nil, err, false
	} else {
		return fn, nil, false
	}
}

// Runs a multiline snippet, returning true if more input is needed.
// Errors will be printed.
func (L *LuaRepl) Exec(lines []string) bool {
	if len(lines) == 0 {
		return true
	}
	fn, err, incomplete := L.loadstring(lines, true)
	if incomplete {
		return true
	}
	if err != nil {
		L.Println(err)
	} else {
		L.EnvToLua()
		lv, err := L.call(fn)
		if err != nil {
			L.Println(err)
		}
		L.postRun(lv)
	}
	return false
}

// RunFile executes a script with the simulator state bound.
func (L *LuaRepl) RunFile(path string) error {
	L.EnvToLua()
	err := L.DoFile(path)
	L.EnvFromLua()
	return errors.Wrapf(err, "lua %s", path)
}

// Returns a list of lua.LValue for each value on the stack.
func (L *LuaRepl) getArgs() []lua.LValue {
	lv := make([]lua.LValue, L.GetTop())
	for i := range lv {
		lv[i] = L.CheckAny(i + 1)
	}
	return lv
}

// Runs a loaded lua function, returning any errors or return values
func (L *LuaRepl) call(fn *lua.LFunction) ([]lua.LValue, error) {
	L.SetTop(0)
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, err
	}
	return L.getArgs(), nil
}

// A Printf() wrapper around the repl's output.
func (L *LuaRepl) Printf(f string, arg ...interface{}) {
	fmt.Fprintf(L, f, arg...)
}

// A Println() wrapper around the repl's output.
func (L *LuaRepl) Println(arg ...interface{}) {
	fmt.Fprintln(L, arg...)
}
