package textfile

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/hierarchy"
)

// Write emits one line for every field under root whose value in b differs
// from its default. Reading the output into a bitstream with every field at
// its default reproduces b.
func Write(w io.Writer, root hierarchy.Level, b bitarray.BitArray, opts ...OptionFunc) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}

	var (
		bw      = bufio.NewWriter(w)
		fields  int
		written int
	)
	err = hierarchy.Walk(root, func(path []hierarchy.Segment, f hierarchy.Field) error {
		fields++
		if !o.defaults && f.IsDefault(b) {
			return nil
		}
		written++
		_, err := fmt.Fprintf(bw, "%s = %s\n", hierarchy.JoinPath(path), f.GetString(b))
		return err
	})
	if err != nil {
		return fmt.Errorf("write bitstream text: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write bitstream text: %w", err)
	}

	o.logger.Info("wrote bitstream text", zap.Int("fields", fields), zap.Int("lines", written))
	return nil
}
