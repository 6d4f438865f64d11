package hierarchy

import (
	"iter"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/property"
)

// Def describes the sublevels and fields of level type L. Build it once,
// typically in a package-level var, with the Sublevel* and Field* functions;
// after that it is read-only and safe for concurrent use.
type Def[L any] struct {
	kind      string
	sublevels []entry[L, Level]
	fields    []entry[L, Field]
}

type entry[L, N any] struct {
	name      string
	construct func(l L, args []string) (N, error)
	all       func(l L) iter.Seq[N]
}

// NewDef returns an empty description of a level type called kind.
func NewDef[L any](kind string) *Def[L] {
	return &Def[L]{kind: kind}
}

// Bind returns the Level for the value l.
func (d *Def[L]) Bind(l L, state ...StatePiece) Level {
	return &level[L]{def: d, val: l, state: state}
}

// Sublevel0 adds a sublevel without parameters.
func Sublevel0[L, S any](d *Def[L], name string, sub *Def[S], get func(L) S) {
	d.sublevels = append(d.sublevels, entry[L, Level]{
		name: name,
		construct: func(l L, args []string) (Level, error) {
			if err := checkArgs(name, args, 0); err != nil {
				return nil, err
			}
			return sub.Bind(get(l)), nil
		},
		all: func(l L) iter.Seq[Level] {
			return func(yield func(Level) bool) {
				yield(sub.Bind(get(l)))
			}
		},
	})
}

// Sublevel1 adds a sublevel with one parameter.
func Sublevel1[L, S any, A comparable](d *Def[L], name string, sub *Def[S], a Param[A], get func(L, A) S) {
	d.sublevels = append(d.sublevels, entry[L, Level]{
		name: name,
		construct: func(l L, args []string) (Level, error) {
			if err := checkArgs(name, args, 1); err != nil {
				return nil, err
			}
			av, err := a.parse(args[0])
			if err != nil {
				return nil, err
			}
			return sub.Bind(get(l, av), a.piece(av)), nil
		},
		all: func(l L) iter.Seq[Level] {
			return func(yield func(Level) bool) {
				for _, av := range a.Domain {
					if !yield(sub.Bind(get(l, av), a.piece(av))) {
						return
					}
				}
			}
		},
	})
}

// Sublevel2 adds a sublevel with two parameters. Enumeration varies the
// second parameter fastest.
func Sublevel2[L, S any, A, B comparable](d *Def[L], name string, sub *Def[S], a Param[A], b Param[B], get func(L, A, B) S) {
	d.sublevels = append(d.sublevels, entry[L, Level]{
		name: name,
		construct: func(l L, args []string) (Level, error) {
			if err := checkArgs(name, args, 2); err != nil {
				return nil, err
			}
			av, err := a.parse(args[0])
			if err != nil {
				return nil, err
			}
			bv, err := b.parse(args[1])
			if err != nil {
				return nil, err
			}
			return sub.Bind(get(l, av, bv), a.piece(av), b.piece(bv)), nil
		},
		all: func(l L) iter.Seq[Level] {
			return func(yield func(Level) bool) {
				for _, av := range a.Domain {
					for _, bv := range b.Domain {
						if !yield(sub.Bind(get(l, av, bv), a.piece(av), b.piece(bv))) {
							return
						}
					}
				}
			}
		},
	})
}

type field[T any] struct {
	property.Accessor[T]
	state []StatePiece
}

func (f field[T]) State() []StatePiece { return f.state }

// Field0 adds a field without parameters.
func Field0[L, T any](d *Def[L], name string, get func(L) property.Accessor[T]) {
	d.fields = append(d.fields, entry[L, Field]{
		name: name,
		construct: func(l L, args []string) (Field, error) {
			if err := checkArgs(name, args, 0); err != nil {
				return nil, err
			}
			return field[T]{Accessor: get(l)}, nil
		},
		all: func(l L) iter.Seq[Field] {
			return func(yield func(Field) bool) {
				yield(field[T]{Accessor: get(l)})
			}
		},
	})
}

// Field1 adds a field with one parameter.
func Field1[L, T any, A comparable](d *Def[L], name string, a Param[A], get func(L, A) property.Accessor[T]) {
	d.fields = append(d.fields, entry[L, Field]{
		name: name,
		construct: func(l L, args []string) (Field, error) {
			if err := checkArgs(name, args, 1); err != nil {
				return nil, err
			}
			av, err := a.parse(args[0])
			if err != nil {
				return nil, err
			}
			return field[T]{get(l, av), []StatePiece{a.piece(av)}}, nil
		},
		all: func(l L) iter.Seq[Field] {
			return func(yield func(Field) bool) {
				for _, av := range a.Domain {
					if !yield(field[T]{get(l, av), []StatePiece{a.piece(av)}}) {
						return
					}
				}
			}
		},
	})
}

// Field2 adds a field with two parameters. Enumeration varies the second
// parameter fastest.
func Field2[L, T any, A, B comparable](d *Def[L], name string, a Param[A], b Param[B], get func(L, A, B) property.Accessor[T]) {
	d.fields = append(d.fields, entry[L, Field]{
		name: name,
		construct: func(l L, args []string) (Field, error) {
			if err := checkArgs(name, args, 2); err != nil {
				return nil, err
			}
			av, err := a.parse(args[0])
			if err != nil {
				return nil, err
			}
			bv, err := b.parse(args[1])
			if err != nil {
				return nil, err
			}
			return field[T]{get(l, av, bv), []StatePiece{a.piece(av), b.piece(bv)}}, nil
		},
		all: func(l L) iter.Seq[Field] {
			return func(yield func(Field) bool) {
				for _, av := range a.Domain {
					for _, bv := range b.Domain {
						if !yield(field[T]{get(l, av, bv), []StatePiece{a.piece(av), b.piece(bv)}}) {
							return
						}
					}
				}
			}
		},
	})
}

type level[L any] struct {
	def   *Def[L]
	val   L
	state []StatePiece
}

func (l *level[L]) Kind() string { return l.def.kind }

func (l *level[L]) Sublevels() []string { return names(l.def.sublevels) }

func (l *level[L]) Fields() []string { return names(l.def.fields) }

func (l *level[L]) Sublevel(i int, args []string) (Level, error) {
	return l.def.sublevels[i].construct(l.val, args)
}

func (l *level[L]) AllSublevels(i int) iter.Seq[Level] {
	return l.def.sublevels[i].all(l.val)
}

func (l *level[L]) Field(i int, args []string) (Field, error) {
	return l.def.fields[i].construct(l.val, args)
}

func (l *level[L]) AllFields(i int) iter.Seq[Field] {
	return l.def.fields[i].all(l.val)
}

func (l *level[L]) State() []StatePiece { return l.state }

func names[L, N any](entries []entry[L, N]) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}
