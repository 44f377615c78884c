package models

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// savestate format, all integers big endian:
//
// file header
// uint32(savestate format version)
// uint32(crc32 of compressed data)
// uint32(length of compressed data)
// remainder is gzip-compressed
//
// -- uncompressed data start --
// cpu
// uint32(pc)
// uint64(instruction count)
// uint8(halted)
// uint32(number of registers), uint32 * num
// uint32(number of regions)
//
// memory
// 1..num: uint32(addr), uint32(len), <raw memory bytes of len>

const SaveVersion = 1

var ErrBadSave = errors.New("invalid savestate")

type saveHeader struct {
	Version uint32
	Crc32   uint32
	Length  uint32
}

type saveCpu struct {
	PC          uint32
	InsCount    uint64
	Halted      bool
	RegCount    uint32 `struc:"sizeof=Regs"`
	Regs        []uint32
	RegionCount uint32
}

type SaveRegion struct {
	Addr uint32
	Size uint32 `struc:"sizeof=Data"`
	Data []byte
}

// Snapshot is everything needed to resume a simulation.
type Snapshot struct {
	PC       uint32
	InsCount uint64
	Halted   bool
	Regs     []uint32
	Regions  []SaveRegion
}

var saveOptions = &struc.Options{Order: binary.BigEndian}

func (s *Snapshot) Save() ([]byte, error) {
	var body bytes.Buffer
	gz := gzip.NewWriter(&body)
	ss := StrucStream{&readWriter{Writer: gz}, saveOptions}
	err := ss.Pack(&saveCpu{
		PC:          s.PC,
		InsCount:    s.InsCount,
		Halted:      s.Halted,
		Regs:        s.Regs,
		RegionCount: uint32(len(s.Regions)),
	})
	for i := 0; err == nil && i < len(s.Regions); i++ {
		err = ss.Pack(&s.Regions[i])
	}
	if err != nil {
		return nil, errors.Wrap(err, "pack savestate")
	}
	if err := gz.Close(); err != nil {
		return nil, errors.Wrap(err, "compress savestate")
	}
	data := body.Bytes()

	var final bytes.Buffer
	ss = StrucStream{&final, saveOptions}
	if err := ss.Pack(&saveHeader{Version: SaveVersion, Crc32: crc32.ChecksumIEEE(data), Length: uint32(len(data))}); err != nil {
		return nil, errors.Wrap(err, "pack savestate header")
	}
	final.Write(data)
	return final.Bytes(), nil
}

// Load parses a savestate produced by Save. It only checks the container;
// whether the snapshot fits a particular memory layout is up to the caller.
func Load(p []byte) (*Snapshot, error) {
	var hdr saveHeader
	rd := bytes.NewReader(p)
	if err := struc.UnpackWithOptions(rd, &hdr, saveOptions); err != nil {
		return nil, errors.Wrap(ErrBadSave, "short header")
	}
	if hdr.Version != SaveVersion {
		return nil, errors.Wrapf(ErrBadSave, "unsupported version %d", hdr.Version)
	}
	data := p[len(p)-rd.Len():]
	if uint64(hdr.Length) != uint64(len(data)) {
		return nil, errors.Wrapf(ErrBadSave, "length mismatch: header %d, have %d", hdr.Length, len(data))
	}
	if crc32.ChecksumIEEE(data) != hdr.Crc32 {
		return nil, errors.Wrap(ErrBadSave, "crc mismatch")
	}
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrBadSave, err.Error())
	}
	defer gz.Close()
	ss := StrucStream{&readWriter{Reader: gz}, saveOptions}

	var c saveCpu
	if err := ss.Unpack(&c); err != nil {
		return nil, errors.Wrap(ErrBadSave, err.Error())
	}
	snap := &Snapshot{PC: c.PC, InsCount: c.InsCount, Halted: c.Halted, Regs: c.Regs}
	for i := uint32(0); i < c.RegionCount; i++ {
		var r SaveRegion
		if err := ss.Unpack(&r); err != nil {
			return nil, errors.Wrapf(ErrBadSave, "region %d: %v", i, err)
		}
		snap.Regions = append(snap.Regions, r)
	}
	return snap, nil
}

// adapts a one-directional stream to StrucStream
type readWriter struct {
	io.Reader
	io.Writer
}
