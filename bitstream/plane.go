package bitstream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
)

// WritePlane writes every bit of p to w, row by row.
func WritePlane(w io.Writer, p *bitarray.Plane) error {
	buf := bufio.NewWriter(w)
	bw := NewWriter(buf)

	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			if err := bw.WriteBit(Bit(p.Get(bitarray.C(x, y)))); err != nil {
				return err
			}
		}
	}
	if err := bw.Flush(Zero); err != nil {
		return err
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush plane writer: %w", err)
	}
	return nil
}

// ReadPlane reads a width x height plane previously written by WritePlane.
// The stream must end exactly after the plane.
func ReadPlane(r io.Reader, width, height int) (*bitarray.Plane, error) {
	br := NewReader(bufio.NewReader(r))
	p := bitarray.NewPlane(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bit, err := br.ReadBit()
			switch {
			case errors.Is(err, io.EOF):
				return nil, fmt.Errorf("plane appears truncated at %v: %w", bitarray.C(x, y), io.ErrUnexpectedEOF)
			case err != nil:
				return nil, err
			}
			p.Set(bitarray.C(x, y), bool(bit))
		}
	}

	br.Align()
	_, err := br.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		return p, nil
	case err != nil:
		return nil, err
	default:
		return nil, ErrTrailingData
	}
}

// SaveFile atomically replaces filename with the serialised plane.
func SaveFile(filename string, p *bitarray.Plane) error {
	var buf bytes.Buffer
	buf.Grow(ByteSize(p.Width(), p.Height()))
	if err := WritePlane(&buf, p); err != nil {
		return err
	}
	if err := atomic.WriteFile(filename, &buf); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// LoadFile reads a width x height plane from filename.
func LoadFile(filename string, width, height int) (*bitarray.Plane, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ReadPlane(f, width, height)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return p, nil
}
