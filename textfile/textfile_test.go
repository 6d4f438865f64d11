package textfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/hierarchy"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/internal/demo"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/property"
)

func read(t *testing.T, doc string, plane *bitarray.Plane) error {
	t.Helper()
	return Read(strings.NewReader(doc), demo.Root(), plane, WithLogger(zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))))
}

func TestReadSingleLine(t *testing.T) {
	req := require.New(t)
	plane := demo.NewPlane()

	req.NoError(read(t, "tile[0, 0].property_two[1] = true\n", plane))
	req.Equal([]bitarray.Coordinate{bitarray.C(1, 2)}, plane.Diff(demo.NewPlane()))
}

func TestReadForms(t *testing.T) {
	req := require.New(t)
	plane := demo.NewPlane()

	doc := `
# comment
- also a comment

tile[x=1, y=2].property_five = 0xF
  tile[3,3].property_three   =   (x, y)
tile[ y = 0 , x = 0 ].property_one = ChoiceWithX(0111)
dummy_sublevel[].dummy_field = true
`
	req.NoError(read(t, doc, plane))

	req.Equal(uint8(0xF), demo.Device{}.Tile(1, 2).PropertyFive().Get(plane))
	req.True(demo.Device{}.Tile(3, 3).PropertyThree().Get(plane))
	req.True(demo.Dummy{}.DummyField().Get(plane))
	// Labels are ignored; arguments are positional.
	req.Equal("ChoiceWithX(0111)", demo.Device{}.Tile(0, 0).PropertyOne().GetString(plane))
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"missing equals", "tile[0, 0].property_two[1]", ErrMissingEquals},
		{"empty path", "= true", ErrEmptyPath},
		{"unknown sublevel", "tiles[0, 0].property_two[1] = true", hierarchy.ErrUnknownSublevel},
		{"unknown field", "tile[0, 0].property_six = true", hierarchy.ErrUnknownField},
		{"field as sublevel", "tile[0, 0].property_two[1].x = true", hierarchy.ErrUnknownSublevel},
		{"text after brackets", "tile[0, 0]x.property_two[1] = true", ErrUnclosedBrackets},
		{"stray bracket", "tile]0, 0].property_two[1] = true", ErrUnmatchedBracket},
		{"arg count", "tile[0].property_two[1] = true", hierarchy.ErrArgCount},
		{"bad arg", "tile[0, 0].property_two[a] = true", hierarchy.ErrInvalidArg},
		{"arg out of range", "tile[0, 4].property_two[1] = true", hierarchy.ErrInvalidArg},
		{"bad value", "tile[0, 0].property_two[1] = maybe", property.ErrInvalidValue},
		{"bad variant", "tile[0, 0].property_one = ChoiceWithX(01)", property.ErrInvalidValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			plane := demo.NewPlane()

			doc := "tile[0, 0].property_two[0] = true\n\n" + tc.line + "\ntile[0, 0].property_two[2] = true\n"
			err := read(t, doc, plane)
			req.ErrorIs(err, tc.want)

			var lineErr *LineError
			req.True(errors.As(err, &lineErr))
			req.Equal(3, lineErr.Line)
			req.Contains(err.Error(), "error on line 3")

			// The first line stays applied, the failing line and everything
			// after it are not.
			req.Equal([]bitarray.Coordinate{bitarray.C(0, 2)}, plane.Diff(demo.NewPlane()))
		})
	}
}

func TestReadLongLine(t *testing.T) {
	req := require.New(t)
	plane := demo.NewPlane()

	doc := "tile[0, 0].property_two[0] = true\n" + strings.Repeat("#", MaxLineSize+1) + "\n"
	err := read(t, doc, plane)
	req.ErrorIs(err, bufio.ErrTooLong)

	var lineErr *LineError
	req.True(errors.As(err, &lineErr))
	req.Equal(2, lineErr.Line)
	req.Equal([]bitarray.Coordinate{bitarray.C(0, 2)}, plane.Diff(demo.NewPlane()))
}

func TestWriteZeroPlane(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	req.NoError(Write(&buf, demo.Root(), demo.NewPlane()))

	// All-zero bits decode to ChoiceZero, which is not the default variant.
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	req.Len(lines, demo.TilesX*demo.TilesY)
	req.Equal("tile[x=0, y=0].property_one = ChoiceZero", lines[0])
	req.Equal("tile[x=0, y=1].property_one = ChoiceZero", lines[1])
	req.Equal("tile[x=3, y=3].property_one = ChoiceZero", lines[15])
}

func TestWrite(t *testing.T) {
	req := require.New(t)
	plane := demo.NewPlane()
	req.Equal(demo.TilesX*demo.TilesY*8+1, hierarchy.ResetDefaults(demo.Root(), plane))

	dev := demo.Device{}
	dev.Tile(0, 0).PropertyTwo(1).Set(plane, true)
	dev.Tile(2, 3).PropertyFour().Set(plane, true)
	v, err := demo.Property1.Make("ChoiceTwo")
	req.NoError(err)
	dev.Tile(1, 0).PropertyOne().Set(plane, v)
	dev.Dummy().DummyField().Set(plane, true)

	var buf bytes.Buffer
	req.NoError(Write(&buf, demo.Root(), plane))

	// The reset value of property_one decodes as ChoiceZero, so every tile
	// still has a property_one line.
	var want strings.Builder
	for x := range demo.TilesX {
		for y := range demo.TilesY {
			one := "ChoiceZero"
			if x == 1 && y == 0 {
				one = "ChoiceTwo"
			}
			fmt.Fprintf(&want, "tile[x=%d, y=%d].property_one = %s\n", x, y, one)
			if x == 0 && y == 0 {
				want.WriteString("tile[x=0, y=0].property_two[n=1] = true\n")
			}
			if x == 2 && y == 3 {
				want.WriteString("tile[x=2, y=3].property_four = [x, y]\n")
			}
		}
	}
	want.WriteString("dummy_sublevel.dummy_field = true\n")
	req.Equal(want.String(), buf.String())
}

func TestWriteDefaults(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	req.NoError(Write(&buf, demo.Root(), demo.NewPlane(), WithDefaults()))
	req.Equal(demo.TilesX*demo.TilesY*8+1, strings.Count(buf.String(), "\n"))
	req.Contains(buf.String(), "tile[x=3, y=3].property_five = 0x0\n")
	req.Contains(buf.String(), "dummy_sublevel.dummy_field = false\n")
}

func TestRoundTrip(t *testing.T) {
	req := require.New(t)

	plane := demo.NewPlane()
	for i := 0; i < demo.Width*demo.Height; i += 7 {
		x, y := i%demo.Width, i/demo.Width
		if y%4 == 3 && x%4 >= 2 {
			// unused by the tile
			continue
		}
		plane.Set(bitarray.C(x, y), true)
	}
	plane.Set(bitarray.C(15, 15), true)

	var buf bytes.Buffer
	req.NoError(Write(&buf, demo.Root(), plane))

	restored := demo.NewPlane()
	req.NoError(read(t, buf.String(), restored))
	req.True(plane.Equal(restored), "diff at %v", plane.Diff(restored))

	var again bytes.Buffer
	req.NoError(Write(&again, demo.Root(), restored))
	req.Equal(buf.String(), again.String())
}

// flagChip has only boolean fields, so the all-zero plane is all-default.
type flagChip struct{}

var flagDef = hierarchy.NewDef[flagChip]("flags")

func init() {
	hierarchy.Field1(flagDef, "flag", hierarchy.IntParam("i", 4), func(_ flagChip, i int) property.Accessor[bool] {
		return property.NewAccessor(property.Bool, property.At(bitarray.C(i, 0)))
	})
}

func TestAllDefaultIsEmpty(t *testing.T) {
	req := require.New(t)
	root := flagDef.Bind(flagChip{})
	plane := bitarray.NewPlane(4, 1)

	var buf bytes.Buffer
	req.NoError(Write(&buf, root, plane))
	req.Empty(buf.String())

	plane.Set(bitarray.C(2, 0), true)
	buf.Reset()
	req.NoError(Write(&buf, root, plane))
	req.Equal("flag[i=2] = true\n", buf.String())

	restored := bitarray.NewPlane(4, 1)
	req.NoError(Read(&buf, root, restored))
	req.True(plane.Equal(restored))
}

func TestLogging(t *testing.T) {
	req := require.New(t)
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	plane := demo.NewPlane()

	doc := "# header\ntile[0, 0].property_two[1] = true\ntile[0, 0].property_two[2] = true\n"
	req.NoError(Read(strings.NewReader(doc), demo.Root(), plane, WithLogger(logger)))
	req.Equal(2, logs.FilterMessage("applied line").Len())

	summary := logs.FilterMessage("read bitstream text").All()
	req.Len(summary, 1)
	req.Equal(int64(3), summary[0].ContextMap()["lines"])
	req.Equal(int64(2), summary[0].ContextMap()["applied"])

	req.Error(Read(strings.NewReader(""), demo.Root(), plane, WithLogger(nil)))
}

func TestSplitting(t *testing.T) {
	req := require.New(t)

	path, value, err := splitAssignment("a[x=1].b = c = d")
	req.NoError(err)
	req.Equal("a[x=1].b", path)
	req.Equal("c = d", value)

	req.Equal([]string{"a[1.5]", "b", "c[]"}, splitPath("a[1.5].b.c[]"))

	_, _, err = splitAssignment("a].b[x=1] = c")
	req.ErrorIs(err, ErrUnmatchedBracket)
	_, _, err = splitAssignment("a[x=1.b = c")
	req.ErrorIs(err, ErrMissingEquals)

	req.Equal([]string{"a]", "b"}, splitPath("a].b"))

	name, args, err := parseSegment("tile[x=1, 2]")
	req.NoError(err)
	req.Equal("tile", name)
	req.Equal([]string{"1", "2"}, args)

	name, args, err = parseSegment("dummy[ ]")
	req.NoError(err)
	req.Equal("dummy", name)
	req.Nil(args)

	_, _, err = parseSegment("tile[0]x")
	req.ErrorIs(err, ErrUnclosedBrackets)
}
