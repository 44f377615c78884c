package trace

import (
	"bufio"
	"encoding/binary"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

var TRACE_MAGIC = "RVMT"

const TRACE_VERSION = 1

var order = &struc.Options{Order: binary.LittleEndian}

type TraceHeader struct {
	// MAGIC ("RVMT")
	Magic string `struc:"[4]byte" json:"-"`
	// file format version
	Version uint32 `json:"version"`
	// Emulated architecture, right-null-padded.
	Arch string `struc:"[16]byte" json:"arch"`
}

type TraceWriter struct {
	w     io.WriteCloser
	zw    *snappy.Writer
	err   error
	hooks []cpu.Hook
	from  *cpu.Hooks
}

func NewWriter(w io.WriteCloser, arch string) (*TraceWriter, error) {
	header := &TraceHeader{
		Magic:   TRACE_MAGIC,
		Version: TRACE_VERSION,
		Arch:    arch,
	}
	if err := struc.PackWithOptions(w, header, order); err != nil {
		return nil, errors.Wrap(err, "failed to pack header")
	}
	return &TraceWriter{w: w, zw: snappy.NewBufferedWriter(w)}, nil
}

// write a frame at a time
func (t *TraceWriter) Pack(frame *Frame) error {
	if t.err != nil {
		return t.err
	}
	if err := struc.PackWithOptions(t.zw, frame, order); err != nil {
		t.err = errors.Wrap(err, "failed to pack frame")
	}
	return t.err
}

// Attach records every memory access and fault dispatched by hooks. pc
// reports the address of the instruction being executed.
func (t *TraceWriter) Attach(hooks *cpu.Hooks, pc func() uint32) error {
	mem, err := hooks.HookAdd(cpu.HOOK_MEM_READ|cpu.HOOK_MEM_WRITE|cpu.HOOK_MEM_FETCH,
		func(access int, addr uint32, size int, val uint32) {
			t.Pack(&Frame{Op: accessOp(access), Size: uint8(size), PC: pc(), Addr: addr, Value: val})
		}, 1, 0)
	if err != nil {
		return err
	}
	fault, err := hooks.HookAdd(cpu.HOOK_MEM_ERR, func(enum int, addr uint32, size int, val uint32) {
		t.Pack(&Frame{Op: faultOp(enum), Size: uint8(size), PC: pc(), Addr: addr, Value: val})
	}, 1, 0)
	if err != nil {
		hooks.HookDel(mem)
		return err
	}
	t.from = hooks
	t.hooks = []cpu.Hook{mem, fault}
	return nil
}

// Close detaches from any hooks and flushes the stream. It returns the first
// error seen while packing frames.
func (t *TraceWriter) Close() error {
	if t.from != nil {
		for _, hh := range t.hooks {
			t.from.HookDel(hh)
		}
		t.from, t.hooks = nil, nil
	}
	err := t.zw.Close()
	if cerr := t.w.Close(); err == nil {
		err = cerr
	}
	if t.err != nil {
		return t.err
	}
	return err
}

type TraceReader struct {
	r      io.ReadCloser
	zr     *bufio.Reader
	Header TraceHeader
}

func NewReader(r io.ReadCloser) (*TraceReader, error) {
	t := &TraceReader{r: r}
	if err := struc.UnpackWithOptions(r, &t.Header, order); err != nil {
		return nil, errors.Wrap(err, "failed to unpack header")
	}
	if t.Header.Magic != TRACE_MAGIC {
		return nil, errors.New("invalid trace file magic")
	}
	if t.Header.Version != TRACE_VERSION {
		return nil, errors.Errorf("unsupported trace version %d", t.Header.Version)
	}
	t.Header.Arch = strings.TrimRight(t.Header.Arch, "\x00")
	t.zr = bufio.NewReader(snappy.NewReader(r))
	return t, nil
}

// Next returns io.EOF after the last frame.
func (t *TraceReader) Next() (*Frame, error) {
	if _, err := t.zr.Peek(1); err != nil {
		return nil, err
	}
	var frame Frame
	if err := struc.UnpackWithOptions(t.zr, &frame, order); err != nil {
		return nil, errors.Wrap(err, "failed to unpack frame")
	}
	frame.Name = frame.OpName()
	return &frame, nil
}

func (t *TraceReader) Close() error {
	return t.r.Close()
}
