package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	rvsim "github.com/lunixbochs/rvsim/go"
	"github.com/lunixbochs/rvsim/go/cpu/fetch"
	"github.com/lunixbochs/rvsim/go/models"
	"github.com/lunixbochs/rvsim/go/models/trace"
)

// SimCmd is the shared flag handling and setup for subcommands that drive a
// simulator State.
type SimCmd struct {
	Config *models.Config

	SetupFlags func() error
	RunState   func() error
	Teardown   func()

	// the program argument is optional
	NoProgram bool
	Program   string
	// diagnostics were sent to a file with -o
	Redirected bool

	State *rvsim.State
	Flags *flag.FlagSet
}

func NewSimCmd() *SimCmd {
	fs := flag.NewFlagSet("cli", flag.ExitOnError)
	return &SimCmd{Flags: fs}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// ColorOutput reports whether f is a terminal, and wraps it so ansi escapes
// render on every platform.
func ColorOutput(f *os.File) (io.Writer, bool) {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return colorable.NewColorable(f), tty
}

// PrintError prints an error, and a stacktrace if available.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(w, "Error: %s\n", err)
	var st stackTracer
	for e := err; e != nil; {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
		c, ok := e.(interface{ Cause() error })
		if !ok {
			break
		}
		e = c.Cause()
	}
	if st == nil {
		return
	}
	// parse full path and method name for each stack frame
	var frames [][]string
	for _, f := range st.StackTrace() {
		fullpath := ""
		fileline := fmt.Sprintf("%s:%d", f, f)
		method := fmt.Sprintf("%n", f)

		frame := fmt.Sprintf("%+s", f)
		tmp := strings.SplitN(frame, "\n", 3)
		if len(tmp) == 2 {
			pathsplit := strings.Split(tmp[0], "/")
			method = pathsplit[len(pathsplit)-1]
			fullpath = strings.TrimSpace(tmp[1])
		}
		frames = append(frames, []string{fullpath, fileline, method})
		if method == "main.main" {
			break
		}
	}
	widths := make([]int, 3)
	for _, f := range frames {
		for i, s := range f {
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}
	for _, f := range frames {
		for i := 0; i < 2; i++ {
			if widths[i] > 0 {
				fmt.Fprintf(w, "%s%s | ", f[i], strings.Repeat(" ", widths[i]-len(f[i])))
			}
		}
		fmt.Fprintf(w, "%s()\n", f[2])
	}
}

func (c *SimCmd) usage() {
	fs := c.Flags
	usage := "Usage: %s [options]"
	if c.NoProgram {
		usage += " [program]"
	} else {
		usage += " <program>"
	}
	fmt.Fprintf(os.Stderr, usage+"\n\nOptions:\n", fs.Name())
	var flags []*flag.Flag
	fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
	models.PrintFlags(os.Stderr, flags)
	fmt.Fprintf(os.Stderr, "\n<program> is the path prefix of the record files, e.g. prog for\n"+
		"prog.text.hex, prog.data.hex, prog.ktext.hex and prog.kdata.hex.\n")
}

// Interruptible returns a context cancelled by Ctrl-C.
func Interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Run parses argv, builds the State and calls RunState. It returns the
// process exit status.
func (c *SimCmd) Run(argv []string) int {
	fs := c.Flags
	fs.Init(argv[0], flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose output")
	traceExec := fs.Bool("trace-exec", false, "print each executed instruction word")
	traceMem := fs.Bool("trace-mem", false, "print each data memory access")
	tracefile := fs.String("trace", "", "write a binary memory trace to <file>")
	maxSteps := fs.Uint64("max-steps", 0, "halt after this many instructions (0 runs until halted)")
	noColor := fs.Bool("nocolor", false, "disable colored output")
	outfile := fs.String("o", "", "redirect diagnostics to file (default stderr)")
	restore := fs.String("restore", "", "restore a save state after loading")
	cpuprofile := fs.String("cpuprofile", "", "write cpu profile to <file>")
	fs.Usage = c.usage
	if c.SetupFlags != nil {
		if err := c.SetupFlags(); err != nil {
			PrintError(os.Stderr, err)
			return 1
		}
	}
	fs.Parse(argv[1:])

	args := fs.Args()
	if len(args) > 1 || len(args) == 0 && !c.NoProgram {
		fs.Usage()
		return 1
	}
	if len(args) == 1 {
		c.Program = args[0]
	}

	stderr, tty := ColorOutput(os.Stderr)
	config := &models.Config{
		Output:    stderr,
		Color:     tty && !*noColor,
		Verbose:   *verbose,
		TraceExec: *traceExec,
		TraceMem:  *traceMem,
		MaxSteps:  *maxSteps,
	}
	if *outfile != "" {
		out, err := os.OpenFile(*outfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			PrintError(os.Stderr, err)
			return 1
		}
		defer out.Close()
		config.Output = out
		config.Color = false
		c.Redirected = true
	}
	c.Config = config

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			PrintError(os.Stderr, err)
			return 1
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if c.Teardown != nil {
		defer c.Teardown()
	}

	s := rvsim.NewState(config)
	s.Core = fetch.New()
	c.State = s
	if c.Program != "" {
		if err := s.LoadProgram(c.Program); err != nil {
			PrintError(os.Stderr, err)
			return 1
		}
		if *restore != "" {
			if err := s.Restore(*restore); err != nil {
				PrintError(os.Stderr, err)
				return 1
			}
		}
	}
	if *tracefile != "" {
		f, err := os.Create(*tracefile)
		if err != nil {
			PrintError(os.Stderr, err)
			return 1
		}
		tw, err := trace.NewWriter(f, "rv32")
		if err == nil {
			err = tw.Attach(s.Hooks, s.PC)
		}
		if err != nil {
			f.Close()
			PrintError(os.Stderr, err)
			return 1
		}
		defer func() {
			if err := tw.Close(); err != nil {
				PrintError(os.Stderr, errors.Wrap(err, "trace"))
			}
		}()
	}
	if c.RunState == nil {
		return 0
	}
	if err := c.RunState(); err != nil {
		PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
