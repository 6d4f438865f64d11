package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPropertyName is returned when a definition has no property header.
	ErrNoPropertyName = errors.New("pattern encountered, but no property name")

	ErrNoVariants       = errors.New("property has no variants")
	ErrDuplicateVariant = errors.New("duplicate variant name")
	ErrMultipleCatchall = errors.New("more than one catchall variant")
	ErrUnknownDefault   = errors.New("default names an unknown variant")
	ErrTooWide          = errors.New("pattern too wide")
)

func onLine(line int) string {
	if line == 0 {
		return ""
	}
	return fmt.Sprintf(" on line %d", line)
}

// InvalidLineError is returned for a line that fits none of the line forms.
type InvalidLineError struct {
	Line int
	Text string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid line %q%s", e.Text, onLine(e.Line))
}

// InvalidIdentError is returned for a property or variant name that is not an
// identifier.
type InvalidIdentError struct {
	Line  int
	Ident string
}

func (e *InvalidIdentError) Error() string {
	return fmt.Sprintf("invalid ident %q%s", e.Ident, onLine(e.Line))
}

// InvalidPatternError is returned for a pattern with characters other than
// 0, 1, x and X.
type InvalidPatternError struct {
	Line    int
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q%s", e.Pattern, onLine(e.Line))
}

// WidthMismatchError is returned when a pattern's width differs from the
// property's first pattern.
type WidthMismatchError struct {
	Line     int
	Expected int
	Got      int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("bit count mismatch%s, expected %d got %d", onLine(e.Line), e.Expected, e.Got)
}

// MultipleDefaultsError is returned for a second variant marked as default.
type MultipleDefaultsError struct {
	Line int
}

func (e *MultipleDefaultsError) Error() string {
	return fmt.Sprintf("multiple variants marked as default%s", onLine(e.Line))
}

// IncompleteError is returned for a property without catchall whose variants
// leave some inputs unmatched. Uncovered is one such input, written as a
// pattern.
type IncompleteError struct {
	Property  string
	Uncovered string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("property %s has no catchall and does not match %s", e.Property, e.Uncovered)
}
