package models

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestPrintFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Bool("v", false, "verbose output")
	fs.Uint64("max-steps", 0, "stop after this many instructions")
	fs.String("trace", "out.trace", strings.Repeat("word ", 30))
	var flags []*flag.Flag
	fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })

	var out bytes.Buffer
	PrintFlags(&out, flags)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "  -max-steps ") || !strings.HasSuffix(lines[0], "stop after this many instructions") {
		t.Errorf("line 0: %q", lines[0])
	}
	if !strings.Contains(lines[1], "(out.trace)") {
		t.Errorf("default missing: %q", lines[1])
	}
	if len(lines) < 4 {
		t.Fatalf("long usage did not wrap:\n%s", out.String())
	}
	for _, line := range lines {
		if len(line) > 80 {
			t.Errorf("line too long (%d): %q", len(line), line)
		}
	}
	if !strings.HasSuffix(lines[len(lines)-1], "verbose output") {
		t.Errorf("last line: %q", lines[len(lines)-1])
	}
}
