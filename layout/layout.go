// Package layout compiles a tile drawn as a grid of symbol cells into
// coordinate tables, one per property.
//
// Each non-empty cell names the bit it holds: "SYM" is bit 0, "SYM[b]" is bit
// b and "SYM[i][b]" is bit b of instance i. Bits are limited to
// property.MaxWidth. The symbol map translates SYM to
// a property name. The cell at row r, column c is Coordinate{X: c, Y: r}.
package layout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/property"
)

var cellRE = regexp.MustCompile(`^([^\[\]]+)(?:\[([0-9]+)\])??(?:\[([0-9]+)\])?$`)

// Cell is the parsed content of one grid cell.
type Cell struct {
	Symbol   string
	Instance int
	Bit      int
}

func (c Cell) String() string {
	return fmt.Sprintf("%s[%d][%d]", c.Symbol, c.Instance, c.Bit)
}

// ParseCell parses the text of a cell. It reports false for an empty cell.
func ParseCell(s string) (Cell, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Cell{}, false, nil
	}
	m := cellRE.FindStringSubmatch(s)
	if m == nil {
		return Cell{}, false, fmt.Errorf("malformed cell %q", s)
	}

	c := Cell{Symbol: strings.TrimSpace(m[1])}
	var err error
	if m[2] != "" {
		if c.Instance, err = strconv.Atoi(m[2]); err != nil {
			return Cell{}, false, fmt.Errorf("cell %q: instance: %w", s, err)
		}
	}
	if m[3] != "" {
		if c.Bit, err = strconv.Atoi(m[3]); err != nil {
			return Cell{}, false, fmt.Errorf("cell %q: bit: %w", s, err)
		}
	}
	if c.Bit >= property.MaxWidth {
		return Cell{}, false, fmt.Errorf("cell %q: bit %d: %w", s, c.Bit, ErrIndexRange)
	}
	return c, true, nil
}

// MalformedCellError is returned for cell text that is not a bit reference.
type MalformedCellError struct {
	Row, Col int
	Text     string
	Err      error
}

func (e *MalformedCellError) Error() string {
	return fmt.Sprintf("malformed cell contents %q at (%d, %d)", e.Text, e.Row, e.Col)
}

func (e *MalformedCellError) Unwrap() error { return e.Err }

// MissingSymbolError is returned for a cell whose symbol is not in the map.
type MissingSymbolError struct {
	Row, Col int
	Symbol   string
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("missing sym %q at (%d, %d)", e.Symbol, e.Row, e.Col)
}

// MissingBitError is returned when a property's table has a hole.
type MissingBitError struct {
	Name     string
	Instance int
	Bit      int
}

func (e *MissingBitError) Error() string {
	return fmt.Sprintf("missing bit %d for instance %d of %s", e.Bit, e.Instance, e.Name)
}

// DuplicateBitError is returned when two cells claim the same bit.
type DuplicateBitError struct {
	Name     string
	Instance int
	Bit      int
	Row, Col int
}

func (e *DuplicateBitError) Error() string {
	return fmt.Sprintf("bit %d of instance %d of %s appears again at (%d, %d)", e.Bit, e.Instance, e.Name, e.Row, e.Col)
}
