package trace

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

type bufCloser struct {
	*bytes.Buffer
}

func (b bufCloser) Close() error { return nil }

func TestTraceRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	tw, err := NewWriter(bufCloser{&buf}, "rv32")
	if err != nil {
		t.Fatal(err)
	}
	frames := []*Frame{
		{Op: OP_MEM_FETCH, Size: 4, PC: 0x400000, Addr: 0x400000, Value: 0x13},
		{Op: OP_MEM_WRITE, Size: 4, PC: 0x400004, Addr: 0x10000000, Value: 0xdeadbeef},
		{Op: OP_FAULT_READ, Size: 4, PC: 0x400008, Addr: 0x0},
	}
	for _, f := range frames {
		if err := tw.Pack(f); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}

	tr, err := NewReader(io.NopCloser(&buf))
	if err != nil {
		t.Fatal(err)
	}
	if tr.Header.Arch != "rv32" || tr.Header.Version != TRACE_VERSION {
		t.Fatalf("bad header %+v", tr.Header)
	}
	for i, want := range frames {
		got, err := tr.Next()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got.Op != want.Op || got.PC != want.PC || got.Addr != want.Addr || got.Value != want.Value || got.Size != want.Size {
			t.Errorf("frame %d: got %v, want %v", i, got, want)
		}
	}
	if _, err := tr.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !frames[2].Fault() || frames[0].Fault() {
		t.Error("Fault() misclassified frames")
	}
}

func TestBadMagic(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 64)
	copy(data, "UCIR")
	if _, err := NewReader(io.NopCloser(bytes.NewReader(data))); err == nil {
		t.Fatal("accepted a foreign trace")
	}
}

func TestAttach(t *testing.T) {
	rs := cpu.Regions{
		{Addr: 0x1000, MaxSize: 0x10, Desc: "a"},
		{Addr: 0x2000, MaxSize: 0x10, Desc: "b"},
		{Addr: 0x3000, MaxSize: 0x10, Desc: "c"},
		{Addr: 0x4000, MaxSize: 0x10, Desc: "d"},
		{Addr: 0x5000, MaxSize: 0x10, Desc: "e"},
	}
	for _, r := range rs {
		r.Alloc(r.MaxSize)
	}
	mem := cpu.NewMem(rs, binary.LittleEndian)
	hooks := cpu.NewHooks(mem)

	var buf bytes.Buffer
	tw, err := NewWriter(bufCloser{&buf}, "rv32")
	if err != nil {
		t.Fatal(err)
	}
	pc := uint32(0x1000)
	if err := tw.Attach(hooks, func() uint32 { return pc }); err != nil {
		t.Fatal(err)
	}
	mem.ReadUint(0x1000, 4, cpu.MEM_FETCH)
	pc = 0x1004
	mem.WriteUint(0x2000, 4, 7)
	mem.ReadUint(0x2000, 4, cpu.MEM_READ)
	mem.ReadUint(0x9000, 4, cpu.MEM_READ)
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	// detached
	mem.ReadUint(0x2000, 4, cpu.MEM_READ)

	tr, err := NewReader(io.NopCloser(&buf))
	if err != nil {
		t.Fatal(err)
	}
	var ops []string
	for {
		f, err := tr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		ops = append(ops, f.Name)
	}
	want := []string{"fetch", "write", "read", "fault_read"}
	if len(ops) != len(want) {
		t.Fatalf("got ops %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("got ops %v, want %v", ops, want)
		}
	}
}
