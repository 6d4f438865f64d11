package bitarray

import (
	"fmt"
	"strings"
)

const wordBits = 64

// Plane is a dense, fixed-size BitArray backed by packed words.
// Accessing a coordinate outside the plane panics.
type Plane struct {
	width  int
	height int
	words  []uint64
}

// A compile time check to ensure that Plane fully implements the BitArray interface.
var _ BitArray = (*Plane)(nil)

// NewPlane returns an all-zero plane of the given size.
func NewPlane(width, height int) *Plane {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("bitarray: invalid plane size %dx%d", width, height))
	}
	n := width * height
	return &Plane{
		width:  width,
		height: height,
		words:  make([]uint64, (n+wordBits-1)/wordBits),
	}
}

func (p *Plane) Width() int  { return p.width }
func (p *Plane) Height() int { return p.height }

// Len returns the number of bits in the plane.
func (p *Plane) Len() int { return p.width * p.height }

// Contains reports whether c lies inside the plane.
func (p *Plane) Contains(c Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < p.width && c.Y < p.height
}

func (p *Plane) index(c Coordinate) int {
	if !p.Contains(c) {
		panic(fmt.Sprintf("bitarray: coordinate %v outside %dx%d plane", c, p.width, p.height))
	}
	return c.Y*p.width + c.X
}

func (p *Plane) Get(c Coordinate) bool {
	i := p.index(c)
	return p.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

func (p *Plane) Set(c Coordinate, val bool) {
	i := p.index(c)
	if val {
		p.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		p.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// Clear resets every bit to zero.
func (p *Plane) Clear() {
	clear(p.words)
}

// Clone returns an independent copy of p.
func (p *Plane) Clone() *Plane {
	c := &Plane{width: p.width, height: p.height, words: make([]uint64, len(p.words))}
	copy(c.words, p.words)
	return c
}

// Equal reports whether both planes have the same size and contents.
func (p *Plane) Equal(o *Plane) bool {
	if p.width != o.width || p.height != o.height {
		return false
	}
	for i := range p.words {
		if p.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Diff returns, in row-major order, every coordinate whose bit differs
// between the two planes. Both planes must have the same size.
func (p *Plane) Diff(o *Plane) []Coordinate {
	if p.width != o.width || p.height != o.height {
		panic(fmt.Sprintf("bitarray: cannot diff %dx%d with %dx%d plane", p.width, p.height, o.width, o.height))
	}
	var out []Coordinate
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := C(x, y)
			if p.Get(c) != o.Get(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// OnesCount returns the number of set bits.
func (p *Plane) OnesCount() int {
	n := 0
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.Get(C(x, y)) {
				n++
			}
		}
	}
	return n
}

// String renders the plane as rows of '0' and '1', one line per row.
func (p *Plane) String() string {
	var sb strings.Builder
	sb.Grow((p.width + 1) * p.height)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.Get(C(x, y)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
