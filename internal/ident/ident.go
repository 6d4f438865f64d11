// Package ident validates the identifiers used for property, variant and
// layout symbol names.
package ident

import "unicode"

// Valid reports whether s is a usable identifier: a letter or '_' followed by
// letters, digits, '_' or combining marks. A lone "_" is not an identifier.
func Valid(s string) bool {
	if s == "" || s == "_" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) && !unicode.Is(unicode.Nl, r) {
				return false
			}
			continue
		}
		if !isContinue(r) {
			return false
		}
	}
	return true
}

func isContinue(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.In(r, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Pc)
}
