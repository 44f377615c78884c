package cmd

import (
	"fmt"
	"io"

	rvsim "github.com/lunixbochs/rvsim/go"
	"github.com/lunixbochs/rvsim/go/lua"
	"github.com/lunixbochs/rvsim/go/models"
)

type Context struct {
	io.Writer
	S *rvsim.State
	// highlight changed registers in rdump
	Color bool
	// set by quit
	Exit bool

	status *models.StatusDiff
	repl   *lua.LuaRepl
}

func NewContext(w io.Writer, s *rvsim.State) *Context {
	return &Context{
		Writer: w,
		S:      s,
		status: &models.StatusDiff{Arch: s.Arch(), Dumper: s},
	}
}

func (c *Context) Printf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(c, format, a...)
}

// Lua returns the context's script interpreter, created on first use so
// globals persist between lua and eval commands.
func (c *Context) Lua() (*lua.LuaRepl, error) {
	if c.repl == nil {
		repl, err := lua.NewRepl(c.S, c.Writer)
		if err != nil {
			return nil, err
		}
		c.repl = repl
	}
	return c.repl, nil
}

func (c *Context) Close() {
	if c.repl != nil {
		c.repl.Close()
		c.repl = nil
	}
}
