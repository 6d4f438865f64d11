package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/pattern"
)

var bitpropDump bool

// bitpropCmd represents the bitprop command.
var bitpropCmd = &cobra.Command{
	Use:   "bitprop <file>...",
	Short: "Check bit property definitions",
	Long: `Parses and compiles each bit property definition file, reporting the
first error of every file, and prints the variants of those that compile.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props := make([]*pattern.Property, len(args))
		errs := make([]error, len(args))

		var eg errgroup.Group
		eg.SetLimit(cfg.Workers)
		for i, name := range args {
			eg.Go(func() error {
				props[i], errs[i] = compileFile(name)
				return nil
			})
		}
		_ = eg.Wait()

		failed := 0
		for i, name := range args {
			if errs[i] != nil {
				failed++
				logger.Error("invalid definition", zap.String("file", name), zap.Error(errs[i]))
				continue
			}
			printProperty(name, props[i])
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d definitions are invalid", failed, len(args))
		}
		return nil
	},
}

func compileFile(name string) (*pattern.Property, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	def, err := pattern.Parse(f)
	if err != nil {
		return nil, err
	}
	return pattern.Compile(def)
}

func printProperty(file string, p *pattern.Property) {
	def := p.Definition()
	fmt.Printf("%s: %s, %d bits\n", file, def.Name, p.Width())
	if bitpropDump {
		spew.Dump(def)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "variant", "pattern", "keeps bits", "default", "doc"})
	table.SetBorder(true)
	for i, v := range def.Variants {
		mark := ""
		if i == p.DefaultVariant() {
			mark = "*"
		}
		table.Append([]string{strconv.Itoa(i), v.Name, v.Pattern, strconv.FormatBool(v.KeepBits), mark, v.Doc})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(bitpropCmd)
	bitpropCmd.Flags().BoolVar(&bitpropDump, "dump", false, "dump the parsed definitions instead of tables")
}
