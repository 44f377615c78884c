package models

import (
	"io"
	"os"
)

type Config struct {
	// diagnostics and traces; defaults to os.Stderr
	Output io.Writer

	Color     bool
	Verbose   bool
	TraceExec bool
	TraceMem  bool
	// stop after this many instructions; 0 runs until halted
	MaxSteps uint64
}

// Init fills in defaults and returns c for chaining.
func (c *Config) Init() *Config {
	if c.Output == nil {
		c.Output = os.Stderr
	}
	return c
}
