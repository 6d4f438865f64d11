package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultDevice   = "demo"
	DefaultLogLevel = "info"
	DefaultWorkers  = 4

	MinWorkers = 1
	MaxWorkers = 64
)

type Config struct {
	// Device selects the hierarchy used to interpret bitstreams.
	Device   string `mapstructure:"device"`
	LogLevel string `mapstructure:"log-level"`

	// ShowDefaults makes text output include fields at their default value.
	ShowDefaults bool `mapstructure:"show-defaults"`

	// Workers bounds how many definition files are checked in parallel.
	Workers int `mapstructure:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Device:   DefaultDevice,
		LogLevel: DefaultLogLevel,
		Workers:  DefaultWorkers,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Device == "" {
		return fmt.Errorf("invalid `Device`; expected: a device name, given: %q", cfg.Device)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: debug, info, warn or error, given: %q", cfg.LogLevel)
	}

	if cfg.Workers < MinWorkers {
		return fmt.Errorf("invalid `Workers`; expected: >= %d, given: %d", MinWorkers, cfg.Workers)
	}

	if cfg.Workers > MaxWorkers {
		return fmt.Errorf("invalid `Workers`; expected: <= %d, given: %d", MaxWorkers, cfg.Workers)
	}

	return nil
}

// Level returns the parsed log level. Call Validate first.
func (cfg *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Load builds a config from the defaults, then the config file at path (if
// not empty), then any flag in flags that was set explicitly.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	vip := viper.New()
	def := DefaultConfig()
	vip.SetDefault("device", def.Device)
	vip.SetDefault("log-level", def.LogLevel)
	vip.SetDefault("show-defaults", def.ShowDefaults)
	vip.SetDefault("workers", def.Workers)

	if path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := vip.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
