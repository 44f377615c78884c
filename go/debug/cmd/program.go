package cmd

var RestartCmd = cmd(&Command{
	Name: "restart",
	Desc: "Reload the current program and reset the processor.",
	Run: func(c *Context) error {
		return c.S.Restart()
	},
})

var LoadCmd = cmd(&Command{
	Name: "load",
	Desc: "Load a new program, replacing the current one: load <program>.",
	Run: func(c *Context, path string) error {
		return c.S.LoadProgram(path)
	},
})

var SaveCmd = cmd(&Command{
	Name: "save",
	Desc: "Save the processor and memory state: save <file>.",
	Run: func(c *Context, path string) error {
		return c.S.Save(path)
	},
})

var RestoreCmd = cmd(&Command{
	Name: "restore",
	Desc: "Restore state written by save: restore <file>.",
	Run: func(c *Context, path string) error {
		return c.S.Restore(path)
	},
})
