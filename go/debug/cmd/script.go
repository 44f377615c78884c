package cmd

import (
	"strings"
)

var LuaCmd = cmd(&Command{
	Name: "lua",
	Desc: "Run a lua script against the simulator: lua <script>.",
	Run: func(c *Context, path string) error {
		L, err := c.Lua()
		if err != nil {
			return err
		}
		return L.RunFile(path)
	},
})

var EvalCmd = cmd(&Command{
	Name: "eval",
	Desc: "Evaluate a line of lua: eval <code>.",
	Run: func(c *Context, code ...string) error {
		L, err := c.Lua()
		if err != nil {
			return err
		}
		if L.Exec([]string{strings.Join(code, " ")}) {
			c.Printf("incomplete lua statement\n")
		}
		return nil
	},
})
