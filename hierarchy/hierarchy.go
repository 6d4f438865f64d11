// Package hierarchy provides name-driven navigation over a tree of
// parameterized levels, each holding sublevels and fields.
//
// Concrete level types are plain Go values. Their shape is described once by
// a Def, which maps sublevel and field names to typed constructors, so that
// generic tools (such as the text reader and writer) can walk any device
// without knowing its types.
package hierarchy

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/property"
)

var (
	ErrArgCount        = errors.New("wrong number of arguments")
	ErrInvalidArg      = errors.New("invalid argument")
	ErrUnknownSublevel = errors.New("unknown sublevel")
	ErrUnknownField    = errors.New("unknown field")
)

// StatePiece is one identifying parameter of a level or field instance.
type StatePiece struct {
	Name  string
	Value string
}

func (p StatePiece) String() string {
	return p.Name + "=" + p.Value
}

// Level is one instance of a level type. Sublevel and field indices refer to
// the order of Sublevels and Fields; an index out of that range panics.
type Level interface {
	// Kind returns the name of the level's type.
	Kind() string
	Sublevels() []string
	Fields() []string

	// Sublevel constructs one sublevel instance from string arguments.
	Sublevel(i int, args []string) (Level, error)
	// AllSublevels yields every instance of sublevel i, in a fixed order.
	AllSublevels(i int) iter.Seq[Level]

	Field(i int, args []string) (Field, error)
	AllFields(i int) iter.Seq[Field]

	// State returns the parameters this instance was constructed with.
	State() []StatePiece
}

// Field is a property accessor together with the parameters it was
// constructed with.
type Field interface {
	property.Field
	State() []StatePiece
}

// FindSublevel returns the index of the sublevel called name.
func FindSublevel(l Level, name string) (int, error) {
	for i, n := range l.Sublevels() {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w %q in %s", ErrUnknownSublevel, name, l.Kind())
}

// FindField returns the index of the field called name.
func FindField(l Level, name string) (int, error) {
	for i, n := range l.Fields() {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w %q in %s", ErrUnknownField, name, l.Kind())
}

// Segment is one step of a path: a sublevel or field name and the state of
// the instance it selects.
type Segment struct {
	Name  string
	State []StatePiece
}

// String formats s as name or name[a=0, b=1].
func (s Segment) String() string {
	if len(s.State) == 0 {
		return s.Name
	}
	parts := make([]string, len(s.State))
	for i, p := range s.State {
		parts[i] = p.String()
	}
	return s.Name + "[" + strings.Join(parts, ", ") + "]"
}

// JoinPath formats a path as dot-separated segments.
func JoinPath(path []Segment) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
