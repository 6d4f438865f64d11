package property

import (
	"fmt"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
)

// BitPos returns the coordinate of bit i of a property instance, and whether
// that bit is stored inverted.
type BitPos func(i int) (c bitarray.Coordinate, invert bool)

// At places a single-bit property at c.
func At(c bitarray.Coordinate) BitPos {
	return func(int) (bitarray.Coordinate, bool) {
		return c, false
	}
}

// Table places bit i at coords[i].
func Table(coords []bitarray.Coordinate) BitPos {
	return func(i int) (bitarray.Coordinate, bool) {
		return coords[i], false
	}
}

// Offset moves every bit of pos by origin, for tile-relative tables.
func Offset(pos BitPos, origin bitarray.Coordinate) BitPos {
	return func(i int) (bitarray.Coordinate, bool) {
		c, inv := pos(i)
		return c.Add(origin), inv
	}
}

// Invert flips the stored polarity of every bit i for which mask.Bit(i) is set.
func Invert(pos BitPos, mask Vector) BitPos {
	return func(i int) (bitarray.Coordinate, bool) {
		c, inv := pos(i)
		return c, inv != mask.Bit(i)
	}
}

// Accessor binds one property instance to its coordinates. It never holds
// bitstream data and can be copied freely.
type Accessor[T any] struct {
	codec Codec[T]
	pos   BitPos
}

// NewAccessor returns an accessor that reads bit i of the property at pos(i).
func NewAccessor[T any](codec Codec[T], pos BitPos) Accessor[T] {
	return Accessor[T]{codec: codec, pos: pos}
}

// Codec returns the codec used by a.
func (a Accessor[T]) Codec() Codec[T] { return a.codec }

// Coordinates returns the coordinate of every bit, in bit order.
func (a Accessor[T]) Coordinates() []bitarray.Coordinate {
	out := make([]bitarray.Coordinate, a.codec.Width())
	for i := range out {
		out[i], _ = a.pos(i)
	}
	return out
}

// Bits reads the raw bit vector of the property.
func (a Accessor[T]) Bits(b bitarray.BitArray) Vector {
	bits := NewVector(a.codec.Width())
	for i := 0; i < bits.Width(); i++ {
		c, inv := a.pos(i)
		bits.Set(i, b.Get(c) != inv)
	}
	return bits
}

// SetBits writes a raw bit vector of the property.
func (a Accessor[T]) SetBits(b bitarray.BitArray, bits Vector) {
	if bits.Width() != a.codec.Width() {
		panic(fmt.Sprintf("property: %d-bit vector written to %d-bit property", bits.Width(), a.codec.Width()))
	}
	for i := 0; i < bits.Width(); i++ {
		c, inv := a.pos(i)
		b.Set(c, bits.Bit(i) != inv)
	}
}

// Get reads and decodes the property.
func (a Accessor[T]) Get(b bitarray.BitArray) T {
	return a.codec.Decode(a.Bits(b))
}

// Set encodes val and writes it.
func (a Accessor[T]) Set(b bitarray.BitArray, val T) {
	a.SetBits(b, a.codec.Encode(val))
}

// GetString reads the property in its human-readable form.
func (a Accessor[T]) GetString(b bitarray.BitArray) string {
	return a.codec.Format(a.Get(b))
}

// SetString parses s and writes the result. Nothing is written if s does
// not parse.
func (a Accessor[T]) SetString(b bitarray.BitArray, s string) error {
	val, err := a.codec.Parse(s)
	if err != nil {
		return err
	}
	a.Set(b, val)
	return nil
}

// IsDefault reports whether the property currently holds its default value.
func (a Accessor[T]) IsDefault(b bitarray.BitArray) bool {
	return a.codec.IsDefault(a.Get(b))
}

// Reset writes the default value. It reports false, and writes nothing, if
// the codec has no default.
func (a Accessor[T]) Reset(b bitarray.BitArray) bool {
	d, ok := a.codec.(Defaulter[T])
	if !ok {
		return false
	}
	val, ok := d.Default()
	if !ok {
		return false
	}
	a.Set(b, val)
	return true
}

// Field is the type-erased, string-based view of an accessor.
type Field interface {
	GetString(b bitarray.BitArray) string
	SetString(b bitarray.BitArray, s string) error
	IsDefault(b bitarray.BitArray) bool
	Reset(b bitarray.BitArray) bool
}

var _ Field = Accessor[bool]{}
