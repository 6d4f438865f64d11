package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitstream"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/hierarchy"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/textfile"
)

var loadBase string

// loadCmd represents the load command.
var loadCmd = &cobra.Command{
	Use:   "load <text> <bitstream>",
	Short: "Convert text to a raw bitstream",
	Long: `Applies every line of a text file to a bitstream and saves the result.
The bitstream starts with every field at its default value, or from --base.
Nothing is saved if any line is rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := selectedDevice()
		if err != nil {
			return err
		}

		var plane *bitarray.Plane
		if loadBase != "" {
			if plane, err = bitstream.LoadFile(loadBase, dev.width, dev.height); err != nil {
				return err
			}
		} else {
			plane = dev.newPlane()
			n := hierarchy.ResetDefaults(dev.root(), plane)
			logger.Debug("reset fields to default", zap.Int("fields", n))
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()
		if err := textfile.Read(f, dev.root(), plane, textfile.WithLogger(logger)); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		if err := bitstream.SaveFile(args[1], plane); err != nil {
			return err
		}
		logger.Info("saved bitstream", zap.String("output", args[1]), zap.Int("bits set", plane.OnesCount()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadBase, "base", "", "raw bitstream to start from")
}
