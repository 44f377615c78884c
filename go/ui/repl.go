package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/shibukawa/configdir"

	rvsim "github.com/lunixbochs/rvsim/go"
	"github.com/lunixbochs/rvsim/go/debug/cmd"
)

type Repl struct {
	s   *rvsim.State
	ctx *cmd.Context
	rl  *readline.Instance
}

func historyPath() string {
	configDirs := configdir.New("rvsim", "repl")
	cacheDir := configDirs.QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cacheDir.Path, "history")
}

// NewRepl builds a prompt for s. Unless keepOutput is set, simulator
// diagnostics are routed through readline so the prompt is redrawn.
func NewRepl(s *rvsim.State, color, keepOutput bool) (*Repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		HistoryFile:     historyPath(),
	})
	if err != nil {
		return nil, err
	}
	if !keepOutput {
		s.Config().Output = rl.Stderr()
	}
	ctx := cmd.NewContext(rl.Stdout(), s)
	ctx.Color = color
	return &Repl{s: s, ctx: ctx, rl: rl}, nil
}

func (r *Repl) setPrompt() {
	if r.s.Loaded() {
		r.rl.SetPrompt(fmt.Sprintf("rvsim 0x%08x> ", r.s.PC()))
	} else {
		r.rl.SetPrompt("rvsim> ")
	}
}

// Run reads and executes commands until quit or EOF.
func (r *Repl) Run() {
	defer r.Close()
	for !r.ctx.Exit {
		r.setPrompt()
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(r.rl.Stderr(), err)
			break
		}
		cmd.Run(r.ctx, line)
	}
}

func (r *Repl) Close() {
	r.ctx.Close()
	r.rl.Close()
}
