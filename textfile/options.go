package textfile

import (
	"errors"

	"go.uber.org/zap"
)

type option struct {
	logger   *zap.Logger
	defaults bool
}

func defaultOptions() *option {
	return &option{logger: zap.NewNop()}
}

type OptionFunc func(*option) error

// WithLogger sets the logger. Each line is logged at debug level and a
// summary at info level.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		o.logger = logger
		return nil
	}
}

// WithDefaults makes Write emit fields that are at their default value.
func WithDefaults() OptionFunc {
	return func(o *option) error {
		o.defaults = true
		return nil
	}
}

func applyOptions(opts []OptionFunc) (*option, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
