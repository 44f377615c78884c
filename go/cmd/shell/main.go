package shell

import (
	"github.com/lunixbochs/rvsim/go/cmd"
	"github.com/lunixbochs/rvsim/go/lua"
	"github.com/lunixbochs/rvsim/go/ui"
)

func Main(args []string) int {
	c := cmd.NewSimCmd()
	c.NoProgram = true
	var script *string
	c.SetupFlags = func() error {
		script = c.Flags.String("lua", "", "run a lua script before the prompt")
		return nil
	}
	c.RunState = func() error {
		if *script != "" {
			L, err := lua.NewRepl(c.State, c.Config.Output)
			if err != nil {
				return err
			}
			err = L.RunFile(*script)
			L.Close()
			if err != nil {
				return err
			}
		}
		repl, err := ui.NewRepl(c.State, c.Config.Color, c.Redirected)
		if err != nil {
			return err
		}
		repl.Run()
		return nil
	}
	return c.Run(args)
}

func init() { cmd.Register("shell", "interactive simulator shell", Main) }
