package pattern

import (
	"fmt"
	"strings"

	"lukechampine.com/uint128"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/property"
)

// Value is a decoded bit property: the index of the matched variant and, for
// variants that keep bits, the captured bit vector. Bits is the zero Vector
// for variants that do not keep bits.
type Value struct {
	Variant int
	Bits    property.Vector
}

// Property is a compiled bit property. It is immutable and safe for
// concurrent use.
type Property struct {
	def      Definition
	matchers []matcher
	width    int
	other    int // catchall index, or -1
	def0     int
}

var (
	_ property.Codec[Value]     = (*Property)(nil)
	_ property.Defaulter[Value] = (*Property)(nil)
)

// MustCompile is like Compile but panics on error. It is meant for
// definitions embedded in the program.
func MustCompile(def Definition) *Property {
	p, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return p
}

// Definition returns the definition p was compiled from.
func (p *Property) Definition() Definition { return p.def }

// Name returns the property name.
func (p *Property) Name() string { return p.def.Name }

// Width returns the number of bits of the property.
func (p *Property) Width() int { return p.width }

// DefaultVariant returns the index of the default variant, or NoDefault.
func (p *Property) DefaultVariant() int { return p.def0 }

// Lookup returns the index of the variant called name.
func (p *Property) Lookup(name string) (int, bool) {
	for i, v := range p.def.Variants {
		if v.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Make builds a value of the named variant. Variants that keep bits take
// exactly Width() bits, bit 0 first; other variants take none.
func (p *Property) Make(name string, bits ...bool) (Value, error) {
	i, ok := p.Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s is not a variant of %s", property.ErrInvalidValue, name, p.def.Name)
	}
	if !p.matchers[i].keep {
		if len(bits) != 0 {
			return Value{}, fmt.Errorf("%w: variant %s does not keep bits", property.ErrInvalidValue, name)
		}
		return Value{Variant: i}, nil
	}
	if len(bits) != p.width {
		return Value{}, fmt.Errorf("%w: variant %s needs %d bits, given %d", property.ErrInvalidValue, name, p.width, len(bits))
	}
	return Value{Variant: i, Bits: property.VectorOf(bits...)}, nil
}

// VariantName returns the name of v's variant.
func (p *Property) VariantName(v Value) string {
	return p.def.Variants[v.Variant].Name
}

// Decode returns the first literal variant that matches bits, or the
// catchall if none does.
func (p *Property) Decode(bits property.Vector) Value {
	if bits.Width() != p.width {
		panic(fmt.Sprintf("pattern: %d-bit vector decoded as %d-bit property %s", bits.Width(), p.width, p.def.Name))
	}
	u := bits.Uint128()
	for i := range p.matchers {
		m := &p.matchers[i]
		if m.all || !m.matches(u) {
			continue
		}
		if m.keep {
			return Value{Variant: i, Bits: bits}
		}
		return Value{Variant: i}
	}
	if p.other >= 0 {
		return Value{Variant: p.other, Bits: bits}
	}
	// Compile rejects definitions that leave inputs uncovered.
	panic(fmt.Sprintf("pattern: %s matches no variant of %s", bits, p.def.Name))
}

// Encode returns the bits of v. It panics if v does not belong to p.
func (p *Property) Encode(v Value) property.Vector {
	m := &p.matchers[v.Variant]
	switch {
	case !m.keep:
		return m.fill
	case v.Bits.Width() != p.width:
		panic(fmt.Sprintf("pattern: variant %s of %s holds %d bits, want %d",
			p.VariantName(v), p.def.Name, v.Bits.Width(), p.width))
	case m.all:
		return v.Bits
	}
	captured := v.Bits.Uint128().And(m.mask.Xor(uint128.Max))
	return property.VectorFromUint128(p.width, captured.Or(m.value))
}

// Format returns the variant name, followed for variants that keep bits by
// the captured bits in parentheses, e.g. "ChoiceWithX(0110)".
func (p *Property) Format(v Value) string {
	name := p.VariantName(v)
	if !p.matchers[v.Variant].keep {
		return name
	}
	return name + "(" + v.Bits.String() + ")"
}

// Parse is the inverse of Format.
func (p *Property) Parse(s string) (Value, error) {
	name, args, hasArgs := strings.Cut(s, "(")
	i, ok := p.Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q is not a variant of %s", property.ErrInvalidValue, name, p.def.Name)
	}
	if !p.matchers[i].keep {
		if hasArgs {
			return Value{}, fmt.Errorf("%w: variant %s does not keep bits, given %q", property.ErrInvalidValue, name, s)
		}
		return Value{Variant: i}, nil
	}

	inner, closed := strings.CutSuffix(args, ")")
	if !hasArgs || !closed {
		return Value{}, fmt.Errorf("%w: expected %s(<%d bits>), given %q", property.ErrInvalidValue, name, p.width, s)
	}
	bits, err := property.ParseVector(p.width, inner)
	if err != nil {
		return Value{}, fmt.Errorf("variant %s: %w", name, err)
	}
	return Value{Variant: i, Bits: bits}, nil
}

// IsDefault reports whether v is the default variant. For a default variant
// that keeps bits, the captured bits must also equal the default fill.
func (p *Property) IsDefault(v Value) bool {
	if p.def0 == NoDefault || v.Variant != p.def0 {
		return false
	}
	m := &p.matchers[v.Variant]
	return !m.keep || v.Bits == m.fill
}

// Default returns the default variant with the fill bits captured.
func (p *Property) Default() (Value, bool) {
	if p.def0 == NoDefault {
		return Value{}, false
	}
	m := &p.matchers[p.def0]
	if !m.keep {
		return Value{Variant: p.def0}, true
	}
	return Value{Variant: p.def0, Bits: m.fill}, true
}
