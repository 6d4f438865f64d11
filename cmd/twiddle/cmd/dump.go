package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitstream"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/textfile"
)

var dumpOutput string

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump <bitstream>",
	Short: "Convert a raw bitstream to text",
	Long: `Reads a raw bitstream and writes one "path = value" line for every field
that is not at its default value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := selectedDevice()
		if err != nil {
			return err
		}
		plane, err := bitstream.LoadFile(args[0], dev.width, dev.height)
		if err != nil {
			return err
		}

		opts := []textfile.OptionFunc{textfile.WithLogger(logger)}
		if cfg.ShowDefaults {
			opts = append(opts, textfile.WithDefaults())
		}

		var buf bytes.Buffer
		if err := textfile.Write(&buf, dev.root(), plane, opts...); err != nil {
			return err
		}
		if dumpOutput == "" {
			_, err := os.Stdout.Write(buf.Bytes())
			return err
		}
		if err := atomic.WriteFile(dumpOutput, &buf); err != nil {
			return fmt.Errorf("write %s: %w", dumpOutput, err)
		}
		logger.Info("dumped bitstream", zap.String("input", args[0]), zap.String("output", dumpOutput))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write the text to this file instead of stdout")
}
