package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"github.com/pkg/errors"
)

const haltedMsg = "Processor is halted, cannot run the simulator.\n"

var StepCmd = cmd(&Command{
	Name: "step",
	Desc: "Run the simulator for n cycles (default 1) or until halted.",
	Run: func(c *Context, args ...string) error {
		if len(args) > 1 {
			return errors.New("step: too many arguments")
		}
		n := 1
		if len(args) == 1 {
			v, err := strconv.ParseInt(args[0], 0, 0)
			if err != nil {
				return errors.Errorf("step: unable to parse '%s' as an int", args[0])
			}
			n = int(v)
		}
		if c.S.IsHalted() {
			c.Printf(haltedMsg)
			return nil
		}
		if n <= 0 {
			return nil
		}
		_, err := c.S.Step(uint64(n))
		c.reportBreak()
		return err
	},
})

var GoCmd = cmd(&Command{
	Name: "go",
	Desc: "Run the simulator until the processor halts. Ctrl-C interrupts.",
	Run: func(c *Context) error {
		if c.S.IsHalted() {
			c.Printf(haltedMsg)
			return nil
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		_, err := c.S.Run(ctx)
		c.reportBreak()
		if errors.Cause(err) == context.Canceled {
			c.Printf("Interrupted at 0x%08x.\n", c.S.PC())
			return nil
		}
		return err
	},
})
