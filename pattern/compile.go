package pattern

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/internal/ident"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/property"
)

// NoDefault is the default variant index of a property without a default.
const NoDefault = -1

// matcher is the precomputed form of one variant.
type matcher struct {
	mask  uint128.Uint128 // literal positions
	value uint128.Uint128 // literal bits
	fill  property.Vector // encoding with x as 0 and X as 1
	keep  bool
	all   bool // catchall
}

func (m *matcher) matches(bits uint128.Uint128) bool {
	return bits.And(m.mask) == m.value
}

func (m *matcher) literalAt(i int) bool {
	return !m.mask.Rsh(uint(i)).And64(1).IsZero()
}

func (m *matcher) valueAt(i int) byte {
	if m.value.Rsh(uint(i)).And64(1).IsZero() {
		return '0'
	}
	return '1'
}

// Compile validates def and returns the codec for it.
//
// A definition is rejected if any name is not an identifier or is used twice,
// if patterns differ in width or exceed property.MaxWidth bits, if more than
// one catchall is declared, or if there is no catchall and some input would
// match no variant. The catchall may be declared anywhere; it always matches
// last.
func Compile(def Definition) (*Property, error) {
	if !ident.Valid(def.Name) {
		return nil, &InvalidIdentError{Ident: def.Name}
	}

	p := &Property{def: def, def0: NoDefault, other: -1, width: -1}
	seen := make(map[string]int, len(def.Variants))
	for i, v := range def.Variants {
		if !ident.Valid(v.Name) {
			return nil, fmt.Errorf("property %s: %w", def.Name, &InvalidIdentError{Ident: v.Name})
		}
		if _, ok := seen[v.Name]; ok {
			return nil, fmt.Errorf("property %s: %w: %s", def.Name, ErrDuplicateVariant, v.Name)
		}
		seen[v.Name] = i

		if v.Catchall {
			if p.other >= 0 {
				return nil, fmt.Errorf("property %s: %w", def.Name, ErrMultipleCatchall)
			}
			p.other = i
			continue
		}

		if !validPattern(v.Pattern) {
			return nil, fmt.Errorf("property %s: %w", def.Name, &InvalidPatternError{Pattern: v.Pattern})
		}
		switch {
		case len(v.Pattern) > property.MaxWidth:
			return nil, fmt.Errorf("property %s: %w: %d bits", def.Name, ErrTooWide, len(v.Pattern))
		case p.width < 0:
			p.width = len(v.Pattern)
		case p.width != len(v.Pattern):
			return nil, fmt.Errorf("property %s: %w", def.Name,
				&WidthMismatchError{Expected: p.width, Got: len(v.Pattern)})
		}
	}
	if p.width < 0 {
		return nil, fmt.Errorf("property %s: %w", def.Name, ErrNoVariants)
	}

	p.matchers = make([]matcher, len(def.Variants))
	for i, v := range def.Variants {
		p.matchers[i] = compileVariant(v, p.width)
	}

	if def.Default != "" {
		i, ok := seen[def.Default]
		if !ok {
			return nil, fmt.Errorf("property %s: %w: %s", def.Name, ErrUnknownDefault, def.Default)
		}
		p.def0 = i
	}

	if p.other < 0 {
		pat := make([]byte, p.width)
		for i := range pat {
			pat[i] = 'x'
		}
		cands := make([]*matcher, len(p.matchers))
		for i := range p.matchers {
			cands[i] = &p.matchers[i]
		}
		if uncovered(cands, pat, 0) {
			return nil, &IncompleteError{Property: def.Name, Uncovered: string(pat)}
		}
	}
	return p, nil
}

func compileVariant(v Variant, width int) matcher {
	m := matcher{
		fill: property.NewVector(width),
		keep: v.KeepBits || v.Catchall,
		all:  v.Catchall,
	}
	if v.Catchall {
		return m
	}
	mask := property.NewVector(width)
	value := property.NewVector(width)
	for i := 0; i < width; i++ {
		switch v.Pattern[i] {
		case '0':
			mask.Set(i, true)
		case '1':
			mask.Set(i, true)
			value.Set(i, true)
			m.fill.Set(i, true)
		case 'X':
			m.fill.Set(i, true)
		}
	}
	m.mask = mask.Uint128()
	m.value = value.Uint128()
	return m
}

// uncovered reports whether some input consistent with pat[:pos] matches none
// of cands, and if so leaves an example in pat.
func uncovered(cands []*matcher, pat []byte, pos int) bool {
	if len(cands) == 0 {
		return true
	}
	for _, c := range cands {
		if c.mask.Rsh(uint(pos)).IsZero() {
			return false
		}
	}

	// Some candidate still has a literal at or after pos; split on the first
	// position where any of them does.
	for ; ; pos++ {
		found := false
		for _, c := range cands {
			if c.literalAt(pos) {
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	next := make([]*matcher, 0, len(cands))
	for _, b := range []byte{'0', '1'} {
		pat[pos] = b
		next = next[:0]
		for _, c := range cands {
			if !c.literalAt(pos) || c.valueAt(pos) == b {
				next = append(next, c)
			}
		}
		if uncovered(next, pat, pos+1) {
			return true
		}
	}
	pat[pos] = 'x'
	return false
}
