package rvsim

import (
	"os"

	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/models"
)

func (s *State) Snapshot() *models.Snapshot {
	snap := &models.Snapshot{
		PC:       s.pc,
		InsCount: s.InsCount,
		Halted:   s.Halted,
		Regs:     s.Regs.ContextSave(),
	}
	for _, r := range s.Mem.Regions {
		data := make([]byte, len(r.Data))
		copy(data, r.Data)
		snap.Regions = append(snap.Regions, models.SaveRegion{Addr: r.Addr, Size: r.Size, Data: data})
	}
	return snap
}

// Apply installs snap. It is checked against the region layout first, so a
// snapshot that does not fit leaves the state untouched.
func (s *State) Apply(snap *models.Snapshot) error {
	rs := s.Mem.Regions
	if len(snap.Regs) != s.Regs.Count() {
		return errors.Errorf("snapshot has %d registers, want %d", len(snap.Regs), s.Regs.Count())
	}
	if len(snap.Regions) != len(rs) {
		return errors.Errorf("snapshot has %d regions, want %d", len(snap.Regions), len(rs))
	}
	for i, sr := range snap.Regions {
		r := rs[i]
		if sr.Addr != r.Addr {
			return errors.Errorf("snapshot region %d at %#x, want %s at %#x", i, sr.Addr, r.Desc, r.Addr)
		}
		if sr.Size > r.MaxSize || int(sr.Size) != len(sr.Data) {
			return errors.Errorf("snapshot %s size %#x does not fit (max %#x)", r.Desc, sr.Size, r.MaxSize)
		}
		if r.Anonymous() && sr.Size != r.MaxSize {
			return errors.Errorf("snapshot %s size %#x, want %#x", r.Desc, sr.Size, r.MaxSize)
		}
	}
	// sizes were validated above, so Alloc only fails on a layout bug
	for i, sr := range snap.Regions {
		if err := rs[i].Alloc(sr.Size); err != nil {
			return errors.Wrap(err, "restore")
		}
		copy(rs[i].Data, sr.Data)
	}
	s.Regs.ContextRestore(snap.Regs)
	s.pc, s.hit = snap.PC, nil
	s.InsCount = snap.InsCount
	s.Halted = snap.Halted
	return nil
}

func (s *State) Save(path string) error {
	if !s.Loaded() {
		return errors.WithStack(ErrNotLoaded)
	}
	p, err := s.Snapshot().Save()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, p, 0644), "save")
}

// Restore loads a savestate written by Save. Restart still reloads the
// program from disk, not the savestate.
func (s *State) Restore(path string) error {
	p, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "restore")
	}
	snap, err := models.Load(p)
	if err != nil {
		return errors.Wrap(err, "restore")
	}
	if err := s.Apply(snap); err != nil {
		return errors.Wrap(err, "restore")
	}
	return nil
}
