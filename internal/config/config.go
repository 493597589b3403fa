// Package config reads and writes the gqlselect project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/syssam/gqlselect/compiler/gen"
)

// DefaultFile is the name of the project file looked up by the CLI.
const DefaultFile = "gqlselect.yml"

// Config is the project file. It names the schema sources and the modules
// generated from them.
type Config struct {
	// Schema lists SDL files or glob patterns, relative to the project file.
	Schema StringList `yaml:"schema,omitempty"`

	// Introspection is an introspection result read instead of Schema.
	Introspection string `yaml:"introspection,omitempty"`

	// Generates lists the modules to generate.
	Generates []Output `yaml:"generates"`

	dir string
}

// Output configures one generated module.
type Output struct {
	// Output is the path of the generated module.
	Output string `yaml:"output"`

	// Target is the TypeScript language version, e.g. "ES2020".
	Target string `yaml:"target,omitempty"`

	// Runtime is the module the runtime helpers are imported from.
	Runtime string `yaml:"runtime,omitempty"`

	// Header is written at the top of the module.
	Header string `yaml:"header,omitempty"`

	// Formatter is one of "builtin", "prettier" or "none".
	Formatter string `yaml:"formatter,omitempty"`

	// Features lists the enabled feature-flags.
	Features []string `yaml:"features,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler for StringList.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// Default returns the project file written by "gqlselect init".
func Default() *Config {
	return &Config{
		Schema: StringList{"schema/*.graphql"},
		Generates: []Output{{
			Output:    "src/generated.ts",
			Target:    string(gen.DefaultTarget),
			Runtime:   gen.DefaultRuntimeImport,
			Header:    "// Code generated by gqlselect. DO NOT EDIT.",
			Formatter: "builtin",
		}},
		dir: ".",
	}
}

// Load reads and validates the project file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gen.NewConfigError("file", path, "project file not found; run \"gqlselect init\"")
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, gen.NewConfigError("file", path, "parse config: "+err.Error())
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg.dir = filepath.Dir(abs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the project file to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the project file and collects all errors.
func (c *Config) Validate() error {
	var errs []error
	switch {
	case len(c.Schema) == 0 && c.Introspection == "":
		errs = append(errs, gen.NewConfigError("schema", nil, "either schema or introspection must be set"))
	case len(c.Schema) > 0 && c.Introspection != "":
		errs = append(errs, gen.NewConfigError("introspection", c.Introspection, "schema and introspection are mutually exclusive"))
	}
	if len(c.Generates) == 0 {
		errs = append(errs, gen.NewConfigError("generates", nil, "no outputs configured"))
	}
	seen := make(map[string]struct{}, len(c.Generates))
	for _, o := range c.Generates {
		if o.Output == "" {
			errs = append(errs, gen.NewConfigError("generates.output", nil, "output path is required"))
			continue
		}
		path := c.Path(o.Output)
		if _, ok := seen[path]; ok {
			errs = append(errs, gen.NewConfigError("generates.output", o.Output, "output listed twice"))
		}
		seen[path] = struct{}{}
		if err := new(gen.Config).ApplyAll(o.Options()...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Output, err))
		}
	}
	return errors.Join(errs...)
}

// Dir returns the directory relative paths are resolved against.
func (c *Config) Dir() string {
	if c.dir == "" {
		return "."
	}
	return c.dir
}

// Path resolves p against the project directory.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// SchemaFiles expands the schema sources into file paths. Patterns are
// expanded in order; matches of one pattern are sorted and duplicates are
// dropped.
func (c *Config) SchemaFiles() ([]string, error) {
	if c.Introspection != "" {
		path := c.Path(c.Introspection)
		if _, err := os.Stat(path); err != nil {
			return nil, gen.NewConfigError("introspection", c.Introspection, "introspection file not found")
		}
		return []string{path}, nil
	}
	var (
		files []string
		seen  = make(map[string]struct{})
	)
	for _, pattern := range c.Schema {
		matches, err := c.expand(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func (c *Config) expand(pattern string) ([]string, error) {
	path := c.Path(pattern)
	i := strings.IndexAny(path, "*?[{")
	if i < 0 {
		if _, err := os.Stat(path); err != nil {
			return nil, gen.NewConfigError("schema", pattern, "schema file not found")
		}
		return []string{path}, nil
	}
	g, err := glob.Compile(filepath.ToSlash(path), '/')
	if err != nil {
		return nil, gen.NewConfigError("schema", pattern, "invalid glob pattern: "+err.Error())
	}
	root := path[:i]
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root = filepath.Dir(root)
	}
	var matches []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && (d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if g.Match(filepath.ToSlash(p)) {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, gen.NewConfigError("schema", pattern, "pattern matches no files")
	}
	sort.Strings(matches)
	return matches, nil
}

// Options returns the generator options of the output.
func (o Output) Options() []gen.Option {
	var opts []gen.Option
	if o.Target != "" {
		opts = append(opts, gen.WithTarget(o.Target))
	}
	if o.Runtime != "" {
		opts = append(opts, gen.WithRuntimeImport(o.Runtime))
	}
	if o.Header != "" {
		opts = append(opts, gen.WithHeader(o.Header))
	}
	if o.Formatter != "" {
		opts = append(opts, gen.WithFormatterName(o.Formatter))
	}
	if len(o.Features) > 0 {
		opts = append(opts, gen.WithFeatureNames(o.Features...))
	}
	return opts
}

// Jobs returns one generation job per output, all sharing s. extra options
// are applied after the output's own options.
func (c *Config) Jobs(s *gen.Schema, extra ...gen.Option) []gen.Job {
	jobs := make([]gen.Job, 0, len(c.Generates))
	for _, o := range c.Generates {
		jobs = append(jobs, gen.Job{
			Schema:  s,
			Output:  c.Path(o.Output),
			Options: append(o.Options(), extra...),
		})
	}
	return jobs
}
