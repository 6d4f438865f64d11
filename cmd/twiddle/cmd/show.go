package cmd

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitstream"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/hierarchy"
)

var showGrid bool

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <bitstream>",
	Short: "Print the fields of a raw bitstream as a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := selectedDevice()
		if err != nil {
			return err
		}
		plane, err := bitstream.LoadFile(args[0], dev.width, dev.height)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %dx%d bits, %s, %d set\n", args[0], plane.Width(), plane.Height(),
			bytefmt.ByteSize(uint64(bitstream.ByteSize(plane.Width(), plane.Height()))), plane.OnesCount())
		if showGrid {
			fmt.Print(plane)
		}

		var rows [][]string
		err = hierarchy.Walk(dev.root(), func(path []hierarchy.Segment, f hierarchy.Field) error {
			isDefault := f.IsDefault(plane)
			if isDefault && !cfg.ShowDefaults {
				return nil
			}
			mark := ""
			if isDefault {
				mark = "*"
			}
			rows = append(rows, []string{hierarchy.JoinPath(path), f.GetString(plane), mark})
			return nil
		})
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"field", "value", "default"})
		table.SetBorder(true)
		table.AppendBulk(rows)
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showGrid, "grid", false, "also print the bit plane, one row per line")
}
