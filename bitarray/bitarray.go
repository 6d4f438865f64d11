// Package bitarray provides the 2-D plane of bits that every other package
// reads from and writes to.
//
// Coordinates follow the graphics convention: +X is right, +Y is down.
package bitarray

import "fmt"

// Coordinate is an (x, y) position in a bit plane.
type Coordinate struct {
	X int
	Y int
}

// C is shorthand for Coordinate{x, y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns c offset by o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns c moved back by o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// BitArray is implemented by whatever holds the actual bitstream data.
// Implementations are not required to be safe for concurrent use.
type BitArray interface {
	Get(c Coordinate) bool
	Set(c Coordinate, val bool)
}
