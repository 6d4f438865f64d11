package property

import "fmt"

// CustomCodec is the generic fallback codec for types that only know how to
// convert to and from bits. Unless overridden with WithStrings, the string form
// is the raw bit string (see Vector.String). The default value is whatever an
// all-zero vector decodes to, compared with ==.
type CustomCodec[T comparable] struct {
	width  int
	decode func(Vector) T
	encode func(T) Vector
	format func(T) string
	parse  func(string) (T, error)
	def    T
}

// Custom returns a codec built from a pair of bit conversion functions.
func Custom[T comparable](width int, decode func(Vector) T, encode func(T) Vector) *CustomCodec[T] {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("property: width %d out of range [1, %d]", width, MaxWidth))
	}
	return &CustomCodec[T]{
		width:  width,
		decode: decode,
		encode: encode,
		def:    decode(NewVector(width)),
	}
}

// Raw returns a codec whose values are the bit vectors themselves.
func Raw(width int) *CustomCodec[Vector] {
	identity := func(v Vector) Vector { return v }
	return Custom(width, identity, identity)
}

// WithStrings returns a copy of c that uses format and parse for the string form.
func (c *CustomCodec[T]) WithStrings(format func(T) string, parse func(string) (T, error)) *CustomCodec[T] {
	cc := *c
	cc.format = format
	cc.parse = parse
	return &cc
}

func (c *CustomCodec[T]) Width() int { return c.width }

func (c *CustomCodec[T]) Decode(bits Vector) T { return c.decode(bits) }

func (c *CustomCodec[T]) Encode(val T) Vector { return c.encode(val) }

func (c *CustomCodec[T]) Format(val T) string {
	if c.format != nil {
		return c.format(val)
	}
	return c.encode(val).String()
}

func (c *CustomCodec[T]) Parse(s string) (T, error) {
	if c.parse != nil {
		return c.parse(s)
	}
	bits, err := ParseVector(c.width, s)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.decode(bits), nil
}

func (c *CustomCodec[T]) IsDefault(val T) bool { return val == c.def }

func (c *CustomCodec[T]) Default() (T, bool) { return c.def, true }
