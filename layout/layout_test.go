package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		text string
		want Cell
	}{
		{"P1", Cell{Symbol: "P1"}},
		{" P1[3] ", Cell{Symbol: "P1", Bit: 3}},
		{"P2[1][0]", Cell{Symbol: "P2", Instance: 1, Bit: 0}},
		{"LONG NAME[12][7]", Cell{Symbol: "LONG NAME", Instance: 12, Bit: 7}},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			req := require.New(t)
			got, ok, err := ParseCell(tc.text)
			req.NoError(err)
			req.True(ok)
			req.Equal(tc.want, got)
		})
	}

	_, ok, err := ParseCell("  ")
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = ParseCell("P1[128]")
	require.ErrorIs(t, err, ErrIndexRange)
	got, _, err := ParseCell("P1[127]")
	require.NoError(t, err)
	require.Equal(t, 127, got.Bit)

	for _, text := range []string{"[0]", "P1[", "P1[a]", "P1[0][1][2]", "P1]0["} {
		_, _, err := ParseCell(text)
		require.Error(t, err, text)
	}
}

func testTile() Tile {
	return Tile{
		Name: "test_tile",
		Grid: [][]string{
			{"P1[0]", "P1[1]", "P1[2]", "P1[3]"},
			{"P2[0][0]", "P2[1][0]", "P2[2][0]", "P2[3][0]"},
			{"P3", "", "P4[1]", "P4[0]"},
		},
		Symbols: map[string]string{
			"P1": "PROPERTY_ONE",
			"P2": "PROPERTY_TWO",
			"P3": "PROPERTY_THREE",
			"P4": "PROPERTY_FOUR",
			"P9": "UNUSED",
		},
	}
}

func TestCompile(t *testing.T) {
	req := require.New(t)

	tile := testTile()
	ts, err := tile.Compile()
	req.NoError(err)
	req.Equal("test_tile", ts.Name)
	req.Equal(4, ts.Width)
	req.Equal(3, ts.Height)
	req.Equal([]string{"PROPERTY_FOUR", "PROPERTY_ONE", "PROPERTY_THREE", "PROPERTY_TWO"}, ts.Names())

	req.Equal([]bitarray.Coordinate{
		bitarray.C(0, 0), bitarray.C(1, 0), bitarray.C(2, 0), bitarray.C(3, 0),
	}, ts.Single("PROPERTY_ONE"))
	req.Equal([]bitarray.Coordinate{bitarray.C(3, 2), bitarray.C(2, 2)}, ts.Single("PROPERTY_FOUR"))
	req.Equal([]bitarray.Coordinate{bitarray.C(0, 2)}, ts.Single("PROPERTY_THREE"))

	two, ok := ts.Lookup("PROPERTY_TWO")
	req.True(ok)
	req.Len(two.Instances, 4)
	req.Equal(1, two.Bits())
	_, ok = two.Single()
	req.False(ok)
	req.Equal([]bitarray.Coordinate{bitarray.C(2, 1)}, ts.Instance("PROPERTY_TWO", 2))

	_, ok = ts.Lookup("UNUSED")
	req.False(ok)
	req.Panics(func() { ts.Single("PROPERTY_TWO") })
	req.Panics(func() { ts.Single("NOPE") })
}

func TestCompileErrors(t *testing.T) {
	t.Run("missing symbol", func(t *testing.T) {
		tile := testTile()
		delete(tile.Symbols, "P4")
		_, err := tile.Compile()
		var symErr *MissingSymbolError
		require.ErrorAs(t, err, &symErr)
		require.Equal(t, MissingSymbolError{Row: 2, Col: 2, Symbol: "P4"}, *symErr)
	})

	t.Run("missing bit", func(t *testing.T) {
		tile := testTile()
		tile.Grid[0][2] = ""
		_, err := tile.Compile()
		var bitErr *MissingBitError
		require.ErrorAs(t, err, &bitErr)
		require.Equal(t, MissingBitError{Name: "PROPERTY_ONE", Instance: 0, Bit: 2}, *bitErr)
	})

	t.Run("missing instance", func(t *testing.T) {
		tile := testTile()
		tile.Grid[1][1] = ""
		_, err := tile.Compile()
		var bitErr *MissingBitError
		require.ErrorAs(t, err, &bitErr)
		require.Equal(t, MissingBitError{Name: "PROPERTY_TWO", Instance: 1, Bit: 0}, *bitErr)
	})

	t.Run("duplicate bit", func(t *testing.T) {
		tile := testTile()
		tile.Grid[2][1] = "P1[0]"
		_, err := tile.Compile()
		var dupErr *DuplicateBitError
		require.ErrorAs(t, err, &dupErr)
		require.Equal(t, 2, dupErr.Row)
		require.Equal(t, 1, dupErr.Col)
	})

	t.Run("malformed", func(t *testing.T) {
		tile := testTile()
		tile.Grid[2][1] = "P1[x]"
		_, err := tile.Compile()
		var cellErr *MalformedCellError
		require.ErrorAs(t, err, &cellErr)
		require.Equal(t, "P1[x]", cellErr.Text)
	})

	t.Run("oversized indices", func(t *testing.T) {
		for _, text := range []string{"P1[20000000]", "P2[20000000][0]", "P2[12][0]"} {
			tile := testTile()
			tile.Grid[2][1] = text
			_, err := tile.Compile()
			var cellErr *MalformedCellError
			require.ErrorAs(t, err, &cellErr, text)
			require.Equal(t, text, cellErr.Text)
			require.ErrorIs(t, err, ErrIndexRange, text)
		}
	})

	t.Run("bad name", func(t *testing.T) {
		tile := testTile()
		tile.Symbols["P9"] = "not a name"
		_, err := tile.Compile()
		require.ErrorIs(t, err, ErrInvalidName)
	})
}

const testYAML = `
tiles:
  - name: test_tile
    grid:
      - ["P1[0]", "P1[1]", "P1[2]", "P1[3]"]
      - ["P2[0][0]", "P2[1][0]", "P2[2][0]", "P2[3][0]"]
      - ["P3", "", "P4[1]", "P4[0]"]
    symbols:
      P1: PROPERTY_ONE
      P2: PROPERTY_TWO
      P3: PROPERTY_THREE
      P4: PROPERTY_FOUR
      P9: UNUSED
`

func TestLoad(t *testing.T) {
	req := require.New(t)

	tiles, err := Load(strings.NewReader(testYAML))
	req.NoError(err)
	req.Equal([]Tile{testTile()}, tiles)

	all, err := CompileAll(tiles)
	req.NoError(err)
	req.Contains(all, "test_tile")

	path := filepath.Join(t.TempDir(), "layout.yaml")
	req.NoError(os.WriteFile(path, []byte(testYAML), 0o644))
	tiles, err = LoadFile(path)
	req.NoError(err)
	req.Len(tiles, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	req.ErrorIs(err, os.ErrNotExist)
}

func TestLoadErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field": "tiles:\n  - name: a\n    colour: red\n",
		"no name":       "tiles:\n  - grid: [[P1]]\n",
		"duplicate":     "tiles:\n  - name: a\n  - name: a\n",
		"not yaml":      "tiles: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}

	_, err := Load(strings.NewReader(strings.Repeat("#", MaxFileSize+1)))
	require.ErrorContains(t, err, "exceeds")
}
