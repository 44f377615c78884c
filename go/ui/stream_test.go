package ui

import (
	"bytes"
	"testing"

	"github.com/lunixbochs/rvsim/go/models/trace"
)

func TestStreamUI(t *testing.T) {
	var out bytes.Buffer
	s := NewStreamUI(&out, false)
	frames := []*trace.Frame{
		{Op: trace.OP_MEM_FETCH, Size: 4, PC: 0x400000, Addr: 0x400000, Value: 0x13},
		{Op: trace.OP_MEM_FETCH, Size: 4, PC: 0x400004, Addr: 0x400004, Value: 0x00a52023},
		{Op: trace.OP_MEM_WRITE, Size: 4, PC: 0x400004, Addr: 0x10000000, Value: 5},
		{Op: trace.OP_FAULT_READ, Size: 4, PC: 0x400008, Addr: 0x20000000},
	}
	for _, f := range frames {
		s.Feed(f)
	}
	s.Summary()
	want := "0x00400000: | X 0x00400000 = 0x00000013\n" +
		"0x00400004: | X 0x00400004 = 0x00a52023 | W 0x10000000 = 0x00000005\n" +
		"0x00400008: | fault_read 0x20000000\n" +
		"[4 frames, 1 faults]\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestStreamUIEmpty(t *testing.T) {
	var out bytes.Buffer
	s := NewStreamUI(&out, true)
	s.Flush()
	if out.Len() != 0 {
		t.Fatalf("got %q", out.String())
	}
}

func TestPad(t *testing.T) {
	if got := pad("abc", 5); got != "  " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 5); got != "" {
		t.Errorf("pad = %q", got)
	}
}
