// Package demo is a small 16x16 reference device used by tests and the
// twiddle command: a 4x4 array of identical tiles plus one stray bit.
package demo

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/hierarchy"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/layout"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/pattern"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/property"
)

const (
	Width  = 16
	Height = 16

	TilesX = 4
	TilesY = 4
)

//go:embed bitproperty.txt
var Property1Source string

//go:embed layout.yaml
var LayoutSource []byte

var (
	// Property1 is the compiled tile property_one.
	Property1 *pattern.Property
	// TileLayout holds the coordinate tables of one tile.
	TileLayout *layout.Tables
)

func init() {
	def, err := pattern.ParseString(Property1Source)
	if err != nil {
		panic(fmt.Sprintf("demo: %v", err))
	}
	Property1 = pattern.MustCompile(def)

	tiles, err := layout.Load(bytes.NewReader(LayoutSource))
	if err != nil {
		panic(fmt.Sprintf("demo: %v", err))
	}
	if TileLayout, err = tiles[0].Compile(); err != nil {
		panic(fmt.Sprintf("demo: %v", err))
	}
}

// NewPlane returns an all-zero plane of the device's size.
func NewPlane() *bitarray.Plane {
	return bitarray.NewPlane(Width, Height)
}

// Device is the root level.
type Device struct{}

// Tile is the tile at column X, row Y of the tile array.
type Tile struct {
	X, Y int
}

// Dummy is a parameterless level holding the stray bit.
type Dummy struct{}

func (Device) Tile(x, y int) Tile { return Tile{X: x, Y: y} }

func (Device) Dummy() Dummy { return Dummy{} }

func (t Tile) origin() bitarray.Coordinate {
	return bitarray.C(t.X*TileLayout.Width, t.Y*TileLayout.Height)
}

func (t Tile) table(name string) property.BitPos {
	return property.Offset(property.Table(TileLayout.Single(name)), t.origin())
}

func (t Tile) PropertyOne() property.Accessor[pattern.Value] {
	return property.NewAccessor[pattern.Value](Property1, t.table("PROPERTY_ONE"))
}

func (t Tile) PropertyTwo(n int) property.Accessor[bool] {
	pos := property.Table(TileLayout.Instance("PROPERTY_TWO", n))
	return property.NewAccessor(property.Bool, property.Offset(pos, t.origin()))
}

// PropertyThree is a bool with its own spelling.
func (t Tile) PropertyThree() property.Accessor[bool] {
	return property.NewAccessor[bool](spelledBool("nonono", "(x, y)"), t.table("PROPERTY_THREE"))
}

func (t Tile) PropertyFour() property.Accessor[bool] {
	return property.NewAccessor[bool](spelledBool("lalala", "[x, y]"), t.table("PROPERTY_FOUR"))
}

func (t Tile) PropertyFive() property.Accessor[uint8] {
	return property.NewAccessor[uint8](property.Uint[uint8](4), t.table("PROPERTY_FIVE"))
}

func (Dummy) DummyField() property.Accessor[bool] {
	return property.NewAccessor(property.Bool, property.At(bitarray.C(Width-1, Height-1)))
}

func spelledBool(no, yes string) *property.CustomCodec[bool] {
	return property.Custom(1,
		func(v property.Vector) bool { return v.Bit(0) },
		func(b bool) property.Vector { return property.VectorOf(b) },
	).WithStrings(
		func(b bool) string {
			if b {
				return yes
			}
			return no
		},
		func(s string) (bool, error) {
			switch s {
			case yes:
				return true, nil
			case no:
				return false, nil
			}
			return false, fmt.Errorf("%w: expected %q or %q, given %q", property.ErrInvalidValue, no, yes, s)
		},
	)
}

var (
	DeviceDef = hierarchy.NewDef[Device]("device")
	TileDef   = hierarchy.NewDef[Tile]("tile")
	DummyDef  = hierarchy.NewDef[Dummy]("dummy")
)

func init() {
	hierarchy.Sublevel2(DeviceDef, "tile", TileDef,
		hierarchy.IntParam("x", TilesX), hierarchy.IntParam("y", TilesY), Device.Tile)
	hierarchy.Sublevel0(DeviceDef, "dummy_sublevel", DummyDef, Device.Dummy)

	hierarchy.Field0(TileDef, "property_one", Tile.PropertyOne)
	hierarchy.Field1(TileDef, "property_two", hierarchy.IntParam("n", 4), Tile.PropertyTwo)
	hierarchy.Field0(TileDef, "property_three", Tile.PropertyThree)
	hierarchy.Field0(TileDef, "property_four", Tile.PropertyFour)
	hierarchy.Field0(TileDef, "property_five", Tile.PropertyFive)

	hierarchy.Field0(DummyDef, "dummy_field", Dummy.DummyField)
}

// Root returns the root level of the device.
func Root() hierarchy.Level {
	return DeviceDef.Bind(Device{})
}
