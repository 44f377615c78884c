package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	PrintError(&out, errors.Wrap(errors.New("boom"), "load program"))
	lines := strings.Split(out.String(), "\n")
	if lines[0] != strings.Repeat("-", 40) {
		t.Errorf("line 0: %q", lines[0])
	}
	if lines[1] != "Error: load program: boom" {
		t.Errorf("line 1: %q", lines[1])
	}
	if len(lines) < 4 || !strings.Contains(lines[2], "TestPrintError()") {
		t.Errorf("missing stack trace:\n%s", out.String())
	}
}

func TestPrintErrorPlain(t *testing.T) {
	var out bytes.Buffer
	PrintError(&out, plainError("nope"))
	if out.String() != strings.Repeat("-", 40)+"\nError: nope\n" {
		t.Errorf("got %q", out.String())
	}
}

type plainError string

func (p plainError) Error() string { return string(p) }
