package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/internal/ident"
)

// MaxLineSize is the longest definition line Parse accepts.
const MaxLineSize = 1 << 20

// Parse reads one bit property in the definition language:
//
//	/// Optional documentation for the property.
//	Property1
//	0000 ChoiceZero
//	01xX ChoiceWithX()   optional variant documentation
//	catchall *CatchallChoice()
//
// Blank lines and lines starting with '#' or '-' are ignored. A '*' before a
// variant name marks the default, a "()" after it makes the variant keep its
// wildcard bits. Parse checks the syntax only; Compile validates the result.
func Parse(r io.Reader) (Definition, error) {
	var (
		def     *Definition
		doc     []string
		width   int
		lineno  int
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(nil, MaxLineSize)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		if text, ok := strings.CutPrefix(line, "///"); ok {
			if def != nil {
				return Definition{}, &InvalidLineError{Line: lineno, Text: line}
			}
			doc = append(doc, strings.TrimSpace(text))
			continue
		}

		sep := strings.IndexAny(line, " \t")
		if sep < 0 {
			if def != nil {
				return Definition{}, &InvalidLineError{Line: lineno, Text: line}
			}
			if !ident.Valid(line) {
				return Definition{}, &InvalidIdentError{Line: lineno, Ident: line}
			}
			def = &Definition{Name: line, Doc: strings.Join(doc, "\n")}
			continue
		}
		if def == nil {
			return Definition{}, ErrNoPropertyName
		}

		pat, rest := line[:sep], strings.TrimSpace(line[sep+1:])
		name, varDoc := rest, ""
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			name, varDoc = rest[:i], strings.TrimSpace(rest[i+1:])
		}
		name, isDefault := strings.CutPrefix(name, "*")
		name, keep := strings.CutSuffix(name, "()")
		if !ident.Valid(name) {
			return Definition{}, &InvalidIdentError{Line: lineno, Ident: name}
		}

		v := Variant{Name: name, Doc: varDoc, Pattern: pat, KeepBits: keep}
		if pat == CatchallPattern {
			v.Catchall = true
			v.KeepBits = true
		} else {
			if !validPattern(pat) {
				return Definition{}, &InvalidPatternError{Line: lineno, Pattern: pat}
			}
			if width == 0 {
				width = len(pat)
			} else if len(pat) != width {
				return Definition{}, &WidthMismatchError{Line: lineno, Expected: width, Got: len(pat)}
			}
		}
		def.Variants = append(def.Variants, v)

		if isDefault {
			if def.Default != "" {
				return Definition{}, &MultipleDefaultsError{Line: lineno}
			}
			def.Default = name
		}
	}
	if err := scanner.Err(); err != nil {
		return Definition{}, fmt.Errorf("read definition on line %d: %w", lineno+1, err)
	}
	if def == nil {
		return Definition{}, ErrNoPropertyName
	}
	return *def, nil
}

// ParseString is Parse on an in-memory definition.
func ParseString(s string) (Definition, error) {
	return Parse(strings.NewReader(s))
}

func validPattern(pat string) bool {
	if pat == "" {
		return false
	}
	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '0', '1', 'x', 'X':
		default:
			return false
		}
	}
	return true
}
