// Package bitstream serialises bit planes to byte streams, following the LSB
// pattern, where least-significant bits are written/read first.
//
// A plane is stored row-major, one bit per cell, and the final byte is padded
// with zero bits. The stream carries no header: the reader must know the plane
// dimensions up front.
package bitstream

import "errors"

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

var ErrTrailingData = errors.New("trailing data after plane")

// ByteSize returns the number of bytes a width x height plane occupies.
func ByteSize(width, height int) int {
	return (width*height + 7) / 8
}
