package bitstream

import (
	"io"
)

// BitReader reads bits from an io.Reader.
type BitReader struct {
	stream  io.Reader
	pending [1]byte
	// number of unread bits left in pending, counted from the LS bit.
	avail uint8
}

// NewReader returns a new instance of BitReader.
func NewReader(r io.Reader) *BitReader {
	return &BitReader{stream: r}
}

// ReadBit reads the next single bit from the stream, LSB first.
// It returns io.EOF once the underlying stream is exhausted.
func (br *BitReader) ReadBit() (Bit, error) {
	if br.avail == 0 {
		if _, err := io.ReadFull(br.stream, br.pending[:]); err != nil {
			return Zero, err
		}
		br.avail = 8
	}

	lsb := Bit(br.pending[0]&1 == 1)
	br.pending[0] >>= 1
	br.avail--

	return lsb, nil
}

// ReadByte reads the next 8 bits from the stream, regardless of the alignment.
// If the byte is split, the LSB pattern is followed in bit-groups.
func (br *BitReader) ReadByte() (byte, error) {
	if br.avail == 0 {
		if _, err := io.ReadFull(br.stream, br.pending[:]); err != nil {
			return 0, err
		}
		b := br.pending[0]
		br.pending[0] = 0
		return b, nil
	}

	// The byte stream is not aligned.
	// Use the pending LS bits, combined with the next byte LS bits as MS bits.
	current := br.pending[0]
	if _, err := io.ReadFull(br.stream, br.pending[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	current |= br.pending[0] << br.avail

	// Remove the used LS bits from the next pending byte.
	br.pending[0] >>= 8 - br.avail

	return current, nil
}

// Align drops the bits left in the current byte.
func (br *BitReader) Align() {
	br.pending[0] = 0
	br.avail = 0
}
