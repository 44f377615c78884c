package trace

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/cmd"
	"github.com/lunixbochs/rvsim/go/models/trace"
	"github.com/lunixbochs/rvsim/go/ui"
)

func PrintJson(w io.Writer, tf *trace.TraceReader) error {
	out, err := json.Marshal(&tf.Header)
	if err != nil {
		return errors.Wrap(err, "error printing header")
	}
	fmt.Fprintf(w, "%s\n", out)
	for {
		frame, err := tf.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "error reading next trace frame")
		}
		out, _ := json.Marshal(frame)
		fmt.Fprintf(w, "%s\n", out)
	}
	return nil
}

func PrintPretty(w io.Writer, color bool, tf *trace.TraceReader) error {
	stream := ui.NewStreamUI(w, color)
	defer stream.Summary()
	for {
		frame, err := tf.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "error reading next trace frame")
		}
		stream.Feed(frame)
	}
	return nil
}

func Main(args []string) int {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	jsonFlag := fs.Bool("json", false, "output trace as line-delimited JSON objects")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <tracefile>\n", args[0])
		fs.PrintDefaults()
	}
	fs.Parse(args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		cmd.PrintError(os.Stderr, err)
		return 1
	}
	tf, err := trace.NewReader(f)
	if err != nil {
		f.Close()
		cmd.PrintError(os.Stderr, errors.Wrapf(err, "error opening trace file %s", path))
		return 1
	}
	defer tf.Close()

	stdout, color := cmd.ColorOutput(os.Stdout)
	if *jsonFlag {
		err = PrintJson(stdout, tf)
	} else {
		err = PrintPretty(stdout, color, tf)
	}
	if err != nil {
		cmd.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}

func init() { cmd.Register("trace", "print a saved memory trace", Main) }
