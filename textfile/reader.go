package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/hierarchy"
)

// Read applies every line of r to b, resolving paths from root.
//
// Reading stops at the first bad line with a *LineError. Lines before it
// have already been written to b; nothing is rolled back.
func Read(r io.Reader, root hierarchy.Level, b bitarray.BitArray, opts ...OptionFunc) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}

	var (
		lineno  int
		applied int
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(nil, MaxLineSize)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if err := readLine(root, b, line); err != nil {
			o.logger.Debug("rejected line", zap.Int("line", lineno), zap.String("text", line), zap.Error(err))
			return &LineError{Line: lineno, Err: err}
		}
		o.logger.Debug("applied line", zap.Int("line", lineno), zap.String("text", line))
		applied++
	}
	if err := scanner.Err(); err != nil {
		return &LineError{Line: lineno + 1, Err: err}
	}

	o.logger.Info("read bitstream text", zap.Int("lines", lineno), zap.Int("applied", applied))
	return nil
}

func readLine(root hierarchy.Level, b bitarray.BitArray, line string) error {
	path, value, err := splitAssignment(line)
	if err != nil {
		return err
	}
	if path == "" {
		return ErrEmptyPath
	}
	segments := splitPath(path)

	level := root
	for _, seg := range segments[:len(segments)-1] {
		name, args, err := parseSegment(seg)
		if err != nil {
			return err
		}
		i, err := hierarchy.FindSublevel(level, name)
		if err != nil {
			return err
		}
		if level, err = level.Sublevel(i, args); err != nil {
			return fmt.Errorf("%s: %w", seg, err)
		}
	}

	last := segments[len(segments)-1]
	name, args, err := parseSegment(last)
	if err != nil {
		return err
	}
	i, err := hierarchy.FindField(level, name)
	if err != nil {
		return err
	}
	f, err := level.Field(i, args)
	if err != nil {
		return fmt.Errorf("%s: %w", last, err)
	}
	if err := f.SetString(b, value); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// splitAssignment splits line at the first '=' outside brackets.
func splitAssignment(line string) (path, value string, err error) {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return "", "", ErrUnmatchedBracket
			}
			depth--
		case '=':
			if depth == 0 {
				return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), nil
			}
		}
	}
	return "", "", ErrMissingEquals
}

// splitPath splits path at every '.' outside brackets.
func splitPath(path string) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '[':
			depth++
		case ']':
			depth = max(depth-1, 0)
		case '.':
			if depth == 0 {
				out = append(out, path[start:i])
				start = i + 1
			}
		}
	}
	return append(out, path[start:])
}

// parseSegment splits "name[a, label=b]" into its name and argument values.
// "name" and "name[]" both have no arguments.
func parseSegment(seg string) (name string, args []string, err error) {
	seg = strings.TrimSpace(seg)
	name, rest, hasArgs := strings.Cut(seg, "[")
	name = strings.TrimSpace(name)
	if !hasArgs {
		return name, nil, nil
	}
	inner, closed := strings.CutSuffix(rest, "]")
	if !closed {
		return "", nil, fmt.Errorf("%w in %q", ErrUnclosedBrackets, seg)
	}
	if strings.TrimSpace(inner) == "" {
		return name, nil, nil
	}
	for _, arg := range strings.Split(inner, ",") {
		if _, val, labeled := strings.Cut(arg, "="); labeled {
			arg = val
		}
		args = append(args, strings.TrimSpace(arg))
	}
	return name, args, nil
}
