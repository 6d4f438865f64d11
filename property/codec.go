// Package property converts between the bits of one property instance and a
// typed value, and binds those conversions to coordinates in a bit plane.
package property

import (
	"errors"
)

// ErrInvalidValue is wrapped by every value conversion error.
var ErrInvalidValue = errors.New("invalid value")

// Codec converts between a fixed-width bit vector and values of type T.
//
// Decode(Encode(v)) == v must hold for every v that Encode accepts.
type Codec[T any] interface {
	// Width returns the number of bits of the property.
	Width() int
	Decode(bits Vector) T
	Encode(val T) Vector

	// Format returns the human-readable form of val.
	Format(val T) string
	// Parse is the inverse of Format.
	Parse(s string) (T, error)

	// IsDefault reports whether val is the property's default value.
	IsDefault(val T) bool
}

// Defaulter is implemented by codecs that can produce their default value.
// Default reports false if the property has no default.
type Defaulter[T any] interface {
	Default() (T, bool)
}
