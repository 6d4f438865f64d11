// Package textfile reads and writes the human-readable form of a bitstream:
// one "path = value" line per field that is not at its default, e.g.
//
//	tile[x=0, y=0].property_two[n=1] = true
//
// Blank lines and lines starting with '#' or '-' are ignored. Argument labels
// such as "x=" are optional when reading.
package textfile

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEquals    = errors.New("missing '='")
	ErrUnclosedBrackets = errors.New("unclosed brackets")
	ErrUnmatchedBracket = errors.New("unmatched ']'")
	ErrEmptyPath        = errors.New("empty path")
)

// MaxLineSize is the longest line Read accepts.
const MaxLineSize = 1 << 20

// LineError reports the 1-based line on which reading stopped.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("error on line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
