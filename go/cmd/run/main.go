package run

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/cmd"
	dcmd "github.com/lunixbochs/rvsim/go/debug/cmd"
)

func Main(args []string) int {
	c := cmd.NewSimCmd()
	var rdump *bool
	var save *string
	c.SetupFlags = func() error {
		rdump = c.Flags.Bool("rdump", false, "dump registers after the program halts")
		save = c.Flags.String("save", "", "save state to <file> after the program halts")
		return nil
	}
	c.RunState = func() error {
		s := c.State
		ctx, stop := cmd.Interruptible()
		defer stop()
		n, err := s.Run(ctx)
		if errors.Cause(err) == context.Canceled {
			fmt.Fprintf(c.Config.Output, "Interrupted at 0x%08x.\n", s.PC())
		} else if err != nil {
			return err
		}
		if c.Config.Verbose {
			fmt.Fprintf(c.Config.Output, "[halted after %d instructions at 0x%08x]\n", n, s.PC())
		}
		if *rdump {
			stdout, color := cmd.ColorOutput(os.Stdout)
			ctx := dcmd.NewContext(stdout, s)
			ctx.Color = color && c.Config.Color
			dcmd.Run(ctx, "rdump")
		}
		if *save != "" {
			return s.Save(*save)
		}
		return nil
	}
	return c.Run(args)
}

func init() { cmd.Register("run", "run a program until it halts", Main) }
