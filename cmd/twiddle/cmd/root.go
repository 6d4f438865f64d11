package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/bitarray"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/config"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/hierarchy"
	"github.com/ArcaneNibble/bitstream-spreadsheet-dsl/internal/demo"
)

var (
	Version string
	Commit  string
)

var (
	configFile  string
	printConfig bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// device is a hierarchy the CLI knows how to interpret.
type device struct {
	root          func() hierarchy.Level
	width, height int
}

func (d device) newPlane() *bitarray.Plane {
	return bitarray.NewPlane(d.width, d.height)
}

var devices = map[string]device{
	"demo": {root: demo.Root, width: demo.Width, height: demo.Height},
}

func selectedDevice() (device, error) {
	d, ok := devices[cfg.Device]
	if !ok {
		return device{}, fmt.Errorf("unknown device %q", cfg.Device)
	}
	return d, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "twiddle",
	Short: "Inspect and edit bitstreams",
	Long: `twiddle converts bitstreams between their raw bit plane form and a
human-readable text form, and checks bit property and layout definitions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		if printConfig {
			spew.Dump(cfg)
		}

		logger, err = newLogger(cfg.Level())
		if err != nil {
			return fmt.Errorf("failed to initialize zap logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	def := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.BoolVar(&printConfig, "print-config", false, "print the config in use")
	flags.String("device", def.Device, "device whose hierarchy describes the bitstream")
	flags.String("log-level", def.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("show-defaults", def.ShowDefaults, "include fields at their default value in text output")
	flags.Int("workers", def.Workers, "number of definition files checked in parallel")
}
