package hierarchy

import (
	"fmt"
	"slices"
	"strconv"
)

// Param describes one constructor parameter of a sublevel or field.
type Param[T comparable] struct {
	Name   string
	Parse  func(string) (T, error)
	Format func(T) string

	// Domain lists every valid value in enumeration order. Parsed values
	// outside the domain are rejected.
	Domain []T
}

// IntParam is a decimal integer parameter with domain 0..n-1.
func IntParam(name string, n int) Param[int] {
	domain := make([]int, n)
	for i := range domain {
		domain[i] = i
	}
	return Param[int]{
		Name:   name,
		Parse:  strconv.Atoi,
		Format: strconv.Itoa,
		Domain: domain,
	}
}

func (p Param[T]) parse(s string) (T, error) {
	v, err := p.Parse(s)
	if err != nil {
		return v, fmt.Errorf("%w %s: %w", ErrInvalidArg, p.Name, err)
	}
	if !slices.Contains(p.Domain, v) {
		return v, fmt.Errorf("%w %s: %q out of range", ErrInvalidArg, p.Name, s)
	}
	return v, nil
}

func (p Param[T]) piece(v T) StatePiece {
	return StatePiece{Name: p.Name, Value: p.Format(v)}
}

func checkArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w for %s: want %d, given %d", ErrArgCount, name, n, len(args))
	}
	return nil
}
