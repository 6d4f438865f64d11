package hierarchy

import (
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
)

// WalkFunc is called for every field instance reachable from the root. path
// ends with the field's own segment. Returning an error stops the walk.
type WalkFunc func(path []Segment, f Field) error

// Walk visits every field instance under root depth-first: at each level the
// sublevels come first, in declaration order, then the fields. The path slice
// is reused between calls.
func Walk(root Level, fn WalkFunc) error {
	return walk(root, nil, fn)
}

func walk(l Level, path []Segment, fn WalkFunc) error {
	for i, name := range l.Sublevels() {
		for sub := range l.AllSublevels(i) {
			if err := walk(sub, append(path, Segment{Name: name, State: sub.State()}), fn); err != nil {
				return err
			}
		}
	}
	for i, name := range l.Fields() {
		for f := range l.AllFields(i) {
			if err := fn(append(path, Segment{Name: name, State: f.State()}), f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResetDefaults writes the default value of every field under root that has
// one and returns how many fields were written.
func ResetDefaults(root Level, b bitarray.BitArray) int {
	n := 0
	_ = Walk(root, func(_ []Segment, f Field) error {
		if f.Reset(b) {
			n++
		}
		return nil
	})
	return n
}
