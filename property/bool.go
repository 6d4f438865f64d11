package property

import "fmt"

type boolCodec struct{}

// Bool is the codec for single-bit boolean properties.
var Bool Codec[bool] = boolCodec{}

func (boolCodec) Width() int { return 1 }

func (boolCodec) Decode(bits Vector) bool { return bits.Bit(0) }

func (boolCodec) Encode(val bool) Vector { return VectorOf(val) }

func (boolCodec) Format(val bool) string {
	if val {
		return "true"
	}
	return "false"
}

func (boolCodec) Parse(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: expected a boolean, given %q", ErrInvalidValue, s)
}

func (boolCodec) IsDefault(val bool) bool { return !val }

func (boolCodec) Default() (bool, bool) { return false, true }
