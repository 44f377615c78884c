package cmd

import (
	"github.com/lunixbochs/rvsim/go/models"
)

var BreakCmd = cmd(&Command{
	Name: "break",
	Desc: "Stop execution before the instruction at an address: break <addr>.",
	Run: func(c *Context, desc string) error {
		addr, err := models.ParseBreakpoint(desc)
		if err != nil {
			return err
		}
		bp := c.S.Breaks.Add(addr)
		c.Printf("Breakpoint %d at 0x%08x\n", bp.ID, bp.Addr)
		return nil
	},
})

var DeleteCmd = cmd(&Command{
	Name: "delete",
	Desc: "Remove a breakpoint: delete <id>.",
	Run: func(c *Context, id int) error {
		return c.S.Breaks.Del(id)
	},
})

var BreaksCmd = cmd(&Command{
	Name: "breaks",
	Desc: "List breakpoints.",
	Run: func(c *Context) error {
		for _, bp := range c.S.Breaks.List() {
			c.Printf("  %s\n", bp)
		}
		return nil
	},
})

// reports a breakpoint stop after step or go
func (c *Context) reportBreak() {
	if bp := c.S.AtBreakpoint(); bp != nil {
		c.Printf("Breakpoint %d hit at 0x%08x\n", bp.ID, bp.Addr)
	}
}
