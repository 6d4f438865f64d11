package bitarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
)

func TestCoordinateArithmetic(t *testing.T) {
	req := require.New(t)

	c := bitarray.C(3, 5)
	req.Equal(bitarray.C(7, 7), c.Add(bitarray.C(4, 2)))
	req.Equal(bitarray.C(1, 4), c.Sub(bitarray.C(2, 1)))
	req.Equal("(3, 5)", c.String())
}

func TestPlaneGetSet(t *testing.T) {
	req := require.New(t)

	p := bitarray.NewPlane(16, 16)
	req.Equal(256, p.Len())
	req.Zero(p.OnesCount())

	p.Set(bitarray.C(1, 2), true)
	p.Set(bitarray.C(15, 15), true)
	req.True(p.Get(bitarray.C(1, 2)))
	req.True(p.Get(bitarray.C(15, 15)))
	req.False(p.Get(bitarray.C(2, 1)))
	req.Equal(2, p.OnesCount())

	p.Set(bitarray.C(1, 2), false)
	req.False(p.Get(bitarray.C(1, 2)))
	req.Equal(1, p.OnesCount())

	p.Clear()
	req.Zero(p.OnesCount())
}

func TestPlaneOutOfRange(t *testing.T) {
	p := bitarray.NewPlane(4, 4)
	require.False(t, p.Contains(bitarray.C(4, 0)))
	require.Panics(t, func() { p.Get(bitarray.C(4, 0)) })
	require.Panics(t, func() { p.Set(bitarray.C(0, -1), true) })
}

func TestPlaneCloneEqualDiff(t *testing.T) {
	req := require.New(t)

	a := bitarray.NewPlane(5, 3)
	a.Set(bitarray.C(4, 2), true)

	b := a.Clone()
	req.True(a.Equal(b))
	req.Empty(a.Diff(b))

	b.Set(bitarray.C(0, 1), true)
	b.Set(bitarray.C(4, 2), false)
	req.False(a.Equal(b))
	req.Equal([]bitarray.Coordinate{bitarray.C(0, 1), bitarray.C(4, 2)}, a.Diff(b))

	req.False(a.Equal(bitarray.NewPlane(3, 5)))
}

func TestPlaneString(t *testing.T) {
	p := bitarray.NewPlane(3, 2)
	p.Set(bitarray.C(0, 0), true)
	p.Set(bitarray.C(2, 1), true)
	require.Equal(t, "100\n001\n", p.String())
}
