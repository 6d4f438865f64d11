package property

import (
	"fmt"
	"math/big"
	mbits "math/bits"
	"strings"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// UintCodec stores an unsigned integer in the low Width() bits of T.
type UintCodec[T constraints.Unsigned] struct {
	width int
}

// Uint returns the codec for a width-bit unsigned integer held in T.
// It panics if T is too narrow for width.
func Uint[T constraints.Unsigned](width int) UintCodec[T] {
	if size := mbits.Len64(uint64(^T(0))); width < 1 || width > size {
		panic(fmt.Sprintf("property: width %d out of range [1, %d]", width, size))
	}
	return UintCodec[T]{width: width}
}

func (c UintCodec[T]) Width() int { return c.width }

func (c UintCodec[T]) Decode(bits Vector) T {
	return T(bits.Uint128().Lo)
}

func (c UintCodec[T]) Encode(val T) Vector {
	return VectorFromUint128(c.width, uint128.From64(uint64(val)))
}

func (c UintCodec[T]) Format(val T) string {
	return fmt.Sprintf("0x%X", uint64(val))
}

func (c UintCodec[T]) Parse(s string) (T, error) {
	u, err := parseUint(s, c.width)
	if err != nil {
		return 0, err
	}
	return T(u.Lo), nil
}

func (c UintCodec[T]) IsDefault(val T) bool { return val == 0 }

func (c UintCodec[T]) Default() (T, bool) { return 0, true }

// Uint128Codec stores an unsigned integer of up to 128 bits.
type Uint128Codec struct {
	width int
}

// Uint128 returns the codec for a width-bit unsigned integer, 1 <= width <= 128.
func Uint128(width int) Uint128Codec {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("property: width %d out of range [1, %d]", width, MaxWidth))
	}
	return Uint128Codec{width: width}
}

func (c Uint128Codec) Width() int { return c.width }

func (c Uint128Codec) Decode(bits Vector) uint128.Uint128 { return bits.Uint128() }

func (c Uint128Codec) Encode(val uint128.Uint128) Vector {
	return VectorFromUint128(c.width, val)
}

func (c Uint128Codec) Format(val uint128.Uint128) string {
	return "0x" + strings.ToUpper(val.Big().Text(16))
}

func (c Uint128Codec) Parse(s string) (uint128.Uint128, error) {
	return parseUint(s, c.width)
}

func (c Uint128Codec) IsDefault(val uint128.Uint128) bool { return val.IsZero() }

func (c Uint128Codec) Default() (uint128.Uint128, bool) { return uint128.Zero, true }

// parseUint accepts 0x-prefixed hexadecimal or plain decimal and rejects
// values that do not fit in width bits.
func parseUint(s string, width int) (uint128.Uint128, error) {
	digits, base := s, 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		digits, base = rest, 16
	} else if rest, ok := strings.CutPrefix(s, "0X"); ok {
		digits, base = rest, 16
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return uint128.Zero, fmt.Errorf("%w: expected an unsigned integer, given %q", ErrInvalidValue, s)
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return uint128.Zero, fmt.Errorf("%w: expected an unsigned integer, given %q", ErrInvalidValue, s)
	}
	if n.BitLen() > width {
		return uint128.Zero, fmt.Errorf("%w: %s does not fit in %d bits", ErrInvalidValue, s, width)
	}
	return uint128.FromBig(n), nil
}
