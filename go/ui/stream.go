package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/lunixbochs/rvsim/go/models/trace"
)

var faultColor = ansi.ColorCode("red+b")

func pad(s string, to int) string {
	if len(s) >= to {
		return ""
	}
	return strings.Repeat(" ", to-len(s))
}

// StreamUI prints a memory trace one instruction per line: the pc in the
// first column, then every access that instruction made.
type StreamUI struct {
	w     io.Writer
	color bool

	pending []*trace.Frame
	frames  uint64
	faults  uint64
}

func NewStreamUI(w io.Writer, color bool) *StreamUI {
	return &StreamUI{w: w, color: color}
}

func (s *StreamUI) Printf(f string, args ...interface{}) { fmt.Fprintf(s.w, f, args...) }

// Feed buffers f until a frame from a different instruction arrives.
func (s *StreamUI) Feed(f *trace.Frame) {
	if len(s.pending) > 0 && s.pending[0].PC != f.PC {
		s.Flush()
	}
	s.pending = append(s.pending, f)
	s.frames++
	if f.Fault() {
		s.faults++
	}
}

func (s *StreamUI) effect(f *trace.Frame) string {
	var desc string
	switch f.Op {
	case trace.OP_MEM_READ:
		desc = fmt.Sprintf("R 0x%08x = 0x%08x", f.Addr, f.Value)
	case trace.OP_MEM_WRITE:
		desc = fmt.Sprintf("W 0x%08x = 0x%08x", f.Addr, f.Value)
	case trace.OP_MEM_FETCH:
		desc = fmt.Sprintf("X 0x%08x = 0x%08x", f.Addr, f.Value)
	default:
		desc = fmt.Sprintf("%s 0x%08x", f.OpName(), f.Addr)
		if s.color && f.Fault() {
			desc = faultColor + desc + ansi.Reset
		}
	}
	return desc
}

// Flush prints the buffered instruction.
func (s *StreamUI) Flush() {
	if len(s.pending) == 0 {
		return
	}
	pc := fmt.Sprintf("0x%08x:", s.pending[0].PC)
	effects := make([]string, len(s.pending))
	for i, f := range s.pending {
		effects[i] = s.effect(f)
	}
	s.Printf("%s%s| %s\n", pc, pad(pc, 12), strings.Join(effects, " | "))
	s.pending = s.pending[:0]
}

// Summary flushes and prints frame totals.
func (s *StreamUI) Summary() {
	s.Flush()
	s.Printf("[%d frames, %d faults]\n", s.frames, s.faults)
}
