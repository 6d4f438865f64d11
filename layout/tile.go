package layout

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/internal/ident"
)

var (
	ErrInvalidName = errors.New("invalid name")
	ErrIndexRange  = errors.New("index out of range")
)

// Tile is an uncompiled tile drawing.
type Tile struct {
	Name string `yaml:"name"`
	// Grid rows, top to bottom. Empty strings are unused bits.
	Grid [][]string `yaml:"grid"`
	// Symbols maps grid symbols to property names.
	Symbols map[string]string `yaml:"symbols"`
}

// Table holds the coordinates of every bit of every instance of one property.
type Table struct {
	Name      string
	Instances [][]bitarray.Coordinate
}

// Bits returns the number of bits per instance.
func (t *Table) Bits() int { return len(t.Instances[0]) }

// Single returns the coordinates of a property with exactly one instance.
func (t *Table) Single() ([]bitarray.Coordinate, bool) {
	if len(t.Instances) != 1 {
		return nil, false
	}
	return t.Instances[0], true
}

// Tables is a compiled tile.
type Tables struct {
	Name   string
	Width  int
	Height int
	tables map[string]*Table
}

// Names returns the property names in sorted order.
func (ts *Tables) Names() []string {
	return slices.Sorted(maps.Keys(ts.tables))
}

// Lookup returns the table of the named property.
func (ts *Tables) Lookup(name string) (*Table, bool) {
	t, ok := ts.tables[name]
	return t, ok
}

// Single returns the coordinates of a single-instance property. It panics if
// there is no such property.
func (ts *Tables) Single(name string) []bitarray.Coordinate {
	t, ok := ts.tables[name]
	if !ok {
		panic(fmt.Sprintf("layout: tile %s has no property %s", ts.Name, name))
	}
	coords, ok := t.Single()
	if !ok {
		panic(fmt.Sprintf("layout: property %s of tile %s has %d instances", name, ts.Name, len(t.Instances)))
	}
	return coords
}

// Instance returns the coordinates of instance i of a property. It panics if
// there is no such property or instance.
func (ts *Tables) Instance(name string, i int) []bitarray.Coordinate {
	t, ok := ts.tables[name]
	if !ok {
		panic(fmt.Sprintf("layout: tile %s has no property %s", ts.Name, name))
	}
	return t.Instances[i]
}

type slot struct {
	coord bitarray.Coordinate
	set   bool
}

// Compile builds the coordinate tables of t. Every property must have every
// bit of every instance up to the highest index used, exactly once.
func (t *Tile) Compile() (*Tables, error) {
	for sym, name := range t.Symbols {
		if !ident.Valid(name) {
			return nil, fmt.Errorf("tile %s: symbol %s: %w %q", t.Name, sym, ErrInvalidName, name)
		}
	}

	// Instances are numbered densely from 0 and each needs a cell, so no
	// valid instance index reaches the number of non-empty cells.
	cellCount := 0
	for _, cells := range t.Grid {
		for _, text := range cells {
			if strings.TrimSpace(text) != "" {
				cellCount++
			}
		}
	}

	slots := make(map[string][][]slot)
	width := 0
	for row, cells := range t.Grid {
		width = max(width, len(cells))
		for col, text := range cells {
			cell, ok, err := ParseCell(text)
			if err != nil {
				return nil, fmt.Errorf("tile %s: %w", t.Name, &MalformedCellError{Row: row, Col: col, Text: text, Err: err})
			}
			if !ok {
				continue
			}
			if cell.Instance >= cellCount {
				return nil, fmt.Errorf("tile %s: %w", t.Name, &MalformedCellError{
					Row: row, Col: col, Text: text,
					Err: fmt.Errorf("instance %d: %w", cell.Instance, ErrIndexRange),
				})
			}
			name, ok := t.Symbols[cell.Symbol]
			if !ok {
				return nil, fmt.Errorf("tile %s: %w", t.Name, &MissingSymbolError{Row: row, Col: col, Symbol: cell.Symbol})
			}

			inst := slots[name]
			for len(inst) <= cell.Instance {
				inst = append(inst, nil)
			}
			for len(inst[cell.Instance]) <= cell.Bit {
				inst[cell.Instance] = append(inst[cell.Instance], slot{})
			}
			s := &inst[cell.Instance][cell.Bit]
			if s.set {
				return nil, fmt.Errorf("tile %s: %w", t.Name, &DuplicateBitError{
					Name: name, Instance: cell.Instance, Bit: cell.Bit, Row: row, Col: col,
				})
			}
			*s = slot{coord: bitarray.C(col, row), set: true}
			slots[name] = inst
		}
	}

	ts := &Tables{Name: t.Name, Width: width, Height: len(t.Grid), tables: make(map[string]*Table, len(slots))}
	for _, name := range slices.Sorted(maps.Keys(slots)) {
		inst := slots[name]
		bits := 0
		for _, s := range inst {
			bits = max(bits, len(s))
		}
		table := &Table{Name: name, Instances: make([][]bitarray.Coordinate, len(inst))}
		for i, s := range inst {
			coords := make([]bitarray.Coordinate, bits)
			for b := range coords {
				if b >= len(s) || !s[b].set {
					return nil, fmt.Errorf("tile %s: %w", t.Name, &MissingBitError{Name: name, Instance: i, Bit: b})
				}
				coords[b] = s[b].coord
			}
			table.Instances[i] = coords
		}
		ts.tables[name] = table
	}
	return ts, nil
}
