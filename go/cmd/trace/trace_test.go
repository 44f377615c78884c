package trace

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/lunixbochs/rvsim/go/models/trace"
)

type bufCloser struct {
	*bytes.Buffer
}

func (b bufCloser) Close() error { return nil }

func makeTrace(t *testing.T) *trace.TraceReader {
	var buf bytes.Buffer
	tw, err := trace.NewWriter(bufCloser{&buf}, "rv32")
	if err != nil {
		t.Fatal(err)
	}
	frames := []*trace.Frame{
		{Op: trace.OP_MEM_FETCH, Size: 4, PC: 0x400000, Addr: 0x400000, Value: 0x13},
		{Op: trace.OP_MEM_WRITE, Size: 4, PC: 0x400000, Addr: 0x10000000, Value: 5},
	}
	for _, f := range frames {
		if err := tw.Pack(f); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	tr, err := trace.NewReader(io.NopCloser(&buf))
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestPrintJson(t *testing.T) {
	var out bytes.Buffer
	if err := PrintJson(&out, makeTrace(t)); err != nil {
		t.Fatal(err)
	}
	want := []string{
		`{"version":1,"arch":"rv32"}`,
		`{"size":4,"pc":4194304,"addr":4194304,"value":19,"op":"fetch"}`,
		`{"size":4,"pc":4194304,"addr":268435456,"value":5,"op":"write"}`,
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got:\n%s", out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPrintPretty(t *testing.T) {
	var out bytes.Buffer
	if err := PrintPretty(&out, false, makeTrace(t)); err != nil {
		t.Fatal(err)
	}
	want := "0x00400000: | X 0x00400000 = 0x00000013 | W 0x10000000 = 0x00000005\n" +
		"[2 frames, 0 faults]\n"
	if out.String() != want {
		t.Fatalf("got %q", out.String())
	}
}
