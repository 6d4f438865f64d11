// Package pattern implements enumerated bit properties: a property is an
// ordered list of named variants, each selected by a pattern over the
// characters 0, 1, x and X.
//
// Decoding tries the variants in declaration order and the first one whose
// literal positions match wins. A catchall variant, if present, matches
// whatever is left and keeps the raw bits. Encoding a variant writes its
// literal bits and fills wildcard positions with 0 for x and 1 for X, unless
// the variant keeps bits, in which case the captured bits are written back.
package pattern

// CatchallPattern is the pattern text that declares the catchall variant.
const CatchallPattern = "catchall"

// Definition is the uncompiled description of a bit property.
type Definition struct {
	Name string
	Doc  string

	// Variants in priority order. The catchall, if any, matches after all
	// others wherever it is declared.
	Variants []Variant

	// Default is the name of the default variant, or "" for none.
	Default string
}

// Variant is one alternative encoding of a bit property.
type Variant struct {
	Name string
	Doc  string

	// Pattern has one character per bit, bit 0 first. Ignored for the catchall.
	Pattern string

	// KeepBits makes the variant capture the bits at its wildcard positions.
	KeepBits bool
	// Catchall variants match anything and always keep bits.
	Catchall bool
}
