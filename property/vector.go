package property

import (
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

// MaxWidth is the widest property that can be described.
const MaxWidth = 128

// Vector is an ordered sequence of up to MaxWidth bits that carries its own
// width. Bit i holds the 2^i place value. The zero Vector has width 0.
// Vectors are comparable with ==.
type Vector struct {
	width int
	bits  uint128.Uint128
}

func checkWidth(width int) {
	if width < 0 || width > MaxWidth {
		panic(fmt.Sprintf("property: width %d out of range [0, %d]", width, MaxWidth))
	}
}

func mask(width int) uint128.Uint128 {
	switch {
	case width >= 128:
		return uint128.Max
	case width >= 64:
		return uint128.New(^uint64(0), (uint64(1)<<(width-64))-1)
	default:
		return uint128.New((uint64(1)<<width)-1, 0)
	}
}

// NewVector returns an all-zero vector of the given width.
func NewVector(width int) Vector {
	checkWidth(width)
	return Vector{width: width}
}

// VectorOf builds a vector from bools, bit 0 first.
func VectorOf(bits ...bool) Vector {
	v := NewVector(len(bits))
	for i, b := range bits {
		v.Set(i, b)
	}
	return v
}

// VectorFromUint128 returns the low width bits of u.
func VectorFromUint128(width int, u uint128.Uint128) Vector {
	checkWidth(width)
	return Vector{width: width, bits: u.And(mask(width))}
}

// Width returns the number of bits in v.
func (v Vector) Width() int { return v.width }

// Uint128 returns the bits of v as an integer.
func (v Vector) Uint128() uint128.Uint128 { return v.bits }

func (v Vector) check(i int) {
	if i < 0 || i >= v.width {
		panic(fmt.Sprintf("property: bit %d out of range for width %d", i, v.width))
	}
}

// Bit returns bit i.
func (v Vector) Bit(i int) bool {
	v.check(i)
	if i < 64 {
		return v.bits.Lo&(1<<i) != 0
	}
	return v.bits.Hi&(1<<(i-64)) != 0
}

// Set changes bit i.
func (v *Vector) Set(i int, b bool) {
	v.check(i)
	switch {
	case i < 64 && b:
		v.bits.Lo |= 1 << i
	case i < 64:
		v.bits.Lo &^= 1 << i
	case b:
		v.bits.Hi |= 1 << (i - 64)
	default:
		v.bits.Hi &^= 1 << (i - 64)
	}
}

// IsZero reports whether every bit is clear.
func (v Vector) IsZero() bool { return v.bits.IsZero() }

// Bools returns the bits as a slice, bit 0 first.
func (v Vector) Bools() []bool {
	out := make([]bool, v.width)
	for i := range out {
		out[i] = v.Bit(i)
	}
	return out
}

// String renders one '0' or '1' per bit, bit 0 first.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.width)
	for i := 0; i < v.width; i++ {
		if v.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseVector parses the output of Vector.String. The string must have
// exactly width characters, each '0' or '1'.
func ParseVector(width int, s string) (Vector, error) {
	checkWidth(width)
	if len(s) != width {
		return Vector{}, fmt.Errorf("%w: expected %d bits, given %q", ErrInvalidValue, width, s)
	}
	v := NewVector(width)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.Set(i, true)
		case '0':
		default:
			return Vector{}, fmt.Errorf("%w: invalid bit %q in %q", ErrInvalidValue, s[i], s)
		}
	}
	return v, nil
}
