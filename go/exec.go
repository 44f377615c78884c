package rvsim

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNoCore = errors.New("no execution core attached")

// cycles between context checks in Run
const runBatch = 4096

// Step runs up to n instructions, stopping early once the processor halts or
// reaches a breakpoint. Execution stopped at a breakpoint resumes past it. It
// returns the number of instructions executed.
func (s *State) Step(n uint64) (uint64, error) {
	if s.Core == nil {
		return 0, errors.WithStack(ErrNoCore)
	}
	if !s.Loaded() {
		return 0, errors.WithStack(ErrNotLoaded)
	}
	var i uint64
	for i = 0; i < n && !s.Halted; i++ {
		if bp := s.Breaks.Lookup(s.pc); bp != nil && bp != s.hit {
			bp.Hits++
			s.hit = bp
			break
		}
		s.hit = nil
		if s.config.MaxSteps > 0 && s.InsCount >= s.config.MaxSteps {
			s.Halted = true
			break
		}
		err := s.Core.Step(s)
		s.InsCount++
		if err != nil {
			return i + 1, errors.Wrapf(err, "step at 0x%08x", s.pc)
		}
	}
	return i, nil
}

// Run executes until the processor halts, a breakpoint is reached or ctx is
// done.
func (s *State) Run(ctx context.Context) (uint64, error) {
	var total uint64
	for !s.Halted {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := s.Step(runBatch)
		total += n
		if err != nil {
			return total, err
		}
		if s.hit != nil {
			break
		}
	}
	return total, nil
}
