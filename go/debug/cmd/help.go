package cmd

import (
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"
)

var HelpCmd = cmd(&Command{
	Name: "help",
	Desc: "List commands.",
	Run: func(c *Context) error {
		names := make([]string, 0, len(Commands))
		width := 0
		for name := range Commands {
			names = append(names, name)
			if len(name) > width {
				width = len(name)
			}
		}
		sort.Slice(names, func(i, j int) bool { return sortorder.NaturalLess(names[i], names[j]) })
		for _, name := range names {
			c.Printf("  %-*s  %s\n", width, name, Commands[name].Desc)
		}
		return nil
	},
})

var QuitCmd = cmd(&Command{
	Name: "quit",
	Desc: "Quit the simulator.",
	Run: func(c *Context) error {
		c.Exit = true
		return nil
	},
})
