package loader

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lunixbochs/rvsim/go/models/cpu"
)

// HexLineLen is the width of one record: eight hex digits and a newline.
// Region size is derived from the file size, so records must be exactly this wide.
const HexLineLen = 9

var ErrLineWidth = errors.New("record lies past the end of the region sized from the file")

type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: unable to open file: %v", e.Path, e.Err)
}

func (e *OpenError) Cause() error { return e.Err }

type OversizeError struct {
	Path    string
	Size    uint64
	MaxSize uint32
}

func (e *OversizeError) Error() string {
	return fmt.Sprintf("%s: file is too large for memory region (%#x > %#x)", e.Path, e.Size, e.MaxSize)
}

// ParseError reports the first record that is not a 32-bit hex value.
// Line is zero-based.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: unable to parse '%s' as a 32-bit unsigned hexadecimal integer: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *ParseError) Cause() error { return e.Err }

// RegionSize returns the number of bytes a record file of fileSize bytes fills.
func RegionSize(fileSize int64) uint64 {
	if fileSize < 0 {
		return 0
	}
	return uint64(fileSize) / HexLineLen * 4
}

// LoadRegion allocates r from the record file at path and fills it. r is left
// unloaded on any error.
func LoadRegion(r *cpu.Region, path string, order binary.ByteOrder) error {
	f, err := os.Open(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	size := RegionSize(fi.Size())
	if size > uint64(r.MaxSize) {
		return &OversizeError{Path: path, Size: size, MaxSize: r.MaxSize}
	}
	if err := r.Alloc(uint32(size)); err != nil {
		return err
	}
	if err := ReadHex(f, path, r.Data, order); err != nil {
		r.Free()
		return err
	}
	return nil
}

// ReadHex parses one word per line from rd into buf.
func ReadHex(rd io.Reader, path string, buf []byte, order binary.ByteOrder) error {
	br := bufio.NewReader(rd)
	for line := 0; ; line++ {
		text, err := br.ReadString('\n')
		if err == io.EOF && text == "" {
			return nil
		} else if err != nil && err != io.EOF {
			return errors.Wrap(err, path)
		}
		if i := strings.IndexAny(text, "\r\n"); i >= 0 {
			text = text[:i]
		}
		off := line * 4
		if off+4 > len(buf) {
			return &ParseError{Path: path, Line: line, Text: text, Err: ErrLineWidth}
		}
		val, perr := strconv.ParseUint(text, 16, 32)
		if perr != nil {
			return &ParseError{Path: path, Line: line, Text: text, Err: perr}
		}
		order.PutUint32(buf[off:], uint32(val))
		if err == io.EOF {
			return nil
		}
	}
}

// LoadRegions loads every region in rs for the program at base. File backed
// regions read base+Ext; anonymous regions are zero filled to MaxSize. On
// error every region in rs is freed.
func LoadRegions(rs cpu.Regions, base string, order binary.ByteOrder) error {
	for _, r := range rs {
		var err error
		if r.Anonymous() {
			err = r.Alloc(r.MaxSize)
		} else {
			err = LoadRegion(r, base+r.Ext, order)
		}
		if err != nil {
			rs.Free()
			return err
		}
	}
	return nil
}
