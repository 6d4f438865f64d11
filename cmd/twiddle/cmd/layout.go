package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/layout"
)

// layoutCmd represents the layout command.
var layoutCmd = &cobra.Command{
	Use:   "layout <file>",
	Short: "Compile a tile layout and print its coordinate tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tiles, err := layout.LoadFile(args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"tile", "property", "instances", "bits", "coordinates"})
		table.SetBorder(true)
		for i := range tiles {
			ts, err := tiles[i].Compile()
			if err != nil {
				return err
			}
			for _, name := range ts.Names() {
				t, _ := ts.Lookup(name)
				for j, inst := range t.Instances {
					coords := make([]string, len(inst))
					for k, c := range inst {
						coords[k] = c.String()
					}
					label := name
					if len(t.Instances) > 1 {
						label = fmt.Sprintf("%s[%d]", name, j)
					}
					table.Append([]string{
						fmt.Sprintf("%s (%dx%d)", ts.Name, ts.Width, ts.Height),
						label,
						strconv.Itoa(len(t.Instances)),
						strconv.Itoa(t.Bits()),
						strings.Join(coords, " "),
					})
				}
			}
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
