package gen

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Target is the TypeScript language version the module is emitted against.
type Target string

// Supported targets.
const (
	TargetES5    Target = "ES5"
	TargetES2015 Target = "ES2015"
	TargetES2016 Target = "ES2016"
	TargetES2017 Target = "ES2017"
	TargetES2018 Target = "ES2018"
	TargetES2019 Target = "ES2019"
	TargetES2020 Target = "ES2020"
	TargetES2021 Target = "ES2021"
	TargetES2022 Target = "ES2022"
	TargetESNext Target = "ESNext"
)

// Defaults applied by NewConfig.
const (
	DefaultTarget        = TargetES2020
	DefaultRuntimeImport = "../src"
)

var targets = []Target{
	TargetES5, TargetES2015, TargetES2016, TargetES2017, TargetES2018,
	TargetES2019, TargetES2020, TargetES2021, TargetES2022, TargetESNext,
}

// ParseTarget parses a target name case-insensitively.
func ParseTarget(s string) (Target, error) {
	for _, t := range targets {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", NewConfigError("Target", s, "unsupported target; use ES5, ES2015-ES2022 or ESNext")
}

// TrailingCommas reports whether the target accepts trailing commas in
// parameter lists.
func (t Target) TrailingCommas() bool {
	switch t {
	case TargetES5, TargetES2015, TargetES2016:
		return false
	default:
		return true
	}
}

// Config holds the global configuration for code generation.
type Config struct {
	// Target is the language version the output is formatted against.
	Target Target

	// RuntimeImport is the module the runtime helper types are imported from.
	RuntimeImport string

	// Header is written at the top of the generated module. Lines that are
	// not comments are turned into line comments.
	Header string

	// Features holds the enabled feature-flags.
	Features []Feature

	// Formatter formats the assembled module.
	Formatter Formatter

	// Logger receives generation diagnostics. Nil discards them.
	Logger *log.Logger
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the CLI and tests.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	f, err := FeatureByName(name)
	if err != nil {
		return false, err
	}
	return c.featureEnabled(f), nil
}

func (c *Config) featureEnabled(f Feature) bool {
	if f.Default {
		return true
	}
	for _, e := range c.Features {
		if e.Name == f.Name {
			return true
		}
	}
	return false
}

// withDefaults returns a copy of c with unset fields defaulted.
func (c *Config) withDefaults() *Config {
	cfg := Config{}
	if c != nil {
		cfg = *c
	}
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = DefaultRuntimeImport
	}
	if cfg.Formatter == nil {
		cfg.Formatter = BuiltinFormatter{}
	}
	return &cfg
}
