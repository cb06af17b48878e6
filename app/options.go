package app

import "log/slog"

// Option configures a Context during creation.
type Option func(*options)

type options struct {
	cfg    Config
	driver string
	logger *slog.Logger
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithDriver selects a driver by name, overriding the configuration.
func WithDriver(name string) Option {
	return func(o *options) {
		o.driver = name
	}
}

// WithLogger installs l as the ui logger at Init, overriding the
// configured log level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
