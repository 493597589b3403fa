package gen

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the language version by name, e.g. "ES2020".
func WithTarget(name string) Option {
	return func(c *Config) error {
		t, err := ParseTarget(name)
		if err != nil {
			return err
		}
		c.Target = t
		return nil
	}
}

// WithRuntimeImport sets the module path the runtime helpers are imported from.
func WithRuntimeImport(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("RuntimeImport", nil, "runtime import path cannot be empty")
		}
		c.RuntimeImport = path
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, err := FeatureByName(name)
			if err != nil {
				return err
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithFormatter sets the formatter the assembled module is passed through.
func WithFormatter(f Formatter) Option {
	return func(c *Config) error {
		if f == nil {
			return NewConfigError("Formatter", nil, "formatter cannot be nil")
		}
		c.Formatter = f
		return nil
	}
}

// WithFormatterName selects a built-in formatter: "builtin", "prettier" or "none".
func WithFormatterName(name string) Option {
	return func(c *Config) error {
		f, err := FormatterByName(name)
		if err != nil {
			return err
		}
		c.Formatter = f
		return nil
	}
}

// WithLogger sets the logger diagnostics are written to.
// A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Target:        DefaultTarget,
		RuntimeImport: DefaultRuntimeImport,
		Formatter:     BuiltinFormatter{},
		Logger:        log.Default(),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
