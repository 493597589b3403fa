package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/syssam/gqlselect/compiler/gen"
	"github.com/syssam/gqlselect/compiler/load"
	"github.com/syssam/gqlselect/internal/config"
)

// generateFlags configure a run without a project file.
type generateFlags struct {
	output    string
	target    string
	runtime   string
	header    string
	formatter string
	features  []string
}

func (f *generateFlags) options() []gen.Option {
	var opts []gen.Option
	if f.target != "" {
		opts = append(opts, gen.WithTarget(f.target))
	}
	if f.runtime != "" {
		opts = append(opts, gen.WithRuntimeImport(f.runtime))
	}
	if f.header != "" {
		opts = append(opts, gen.WithHeader(f.header))
	}
	if f.formatter != "" {
		opts = append(opts, gen.WithFormatterName(f.formatter))
	}
	if len(f.features) > 0 {
		opts = append(opts, gen.WithFeatureNames(f.features...))
	}
	return opts
}

func newGenerateCmd(o *options) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate [schema files...]",
		Short: "Generate the selection builder module",
		Long: `Generate the selection builder module.

Without arguments, every output of the project file is generated. With
schema files as arguments the project file is ignored and the module is
written to --output, or to stdout when --output is empty.

Examples:
  gqlselect generate
  gqlselect generate -c api/gqlselect.yml
  gqlselect generate schema.graphql -o src/generated.ts
  gqlselect generate introspection.json --feature mutation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cfg, err := config.Load(o.configPath)
				if err != nil {
					return err
				}
				return runProject(cmd.Context(), o.logger, cfg)
			}
			s, err := load.Files(args...)
			if err != nil {
				return err
			}
			opts := append(f.options(), gen.WithLogger(o.logger))
			if f.output == "" {
				res, err := gen.Generate(cmd.Context(), s, opts...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), res.Source)
				return err
			}
			if _, err := gen.WriteFile(cmd.Context(), s, f.output, opts...); err != nil {
				return err
			}
			o.logger.Info("generated", "output", f.output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&f.target, "target", "", "TypeScript target, e.g. ES2020")
	cmd.Flags().StringVar(&f.runtime, "runtime", "", "Module the runtime helpers are imported from")
	cmd.Flags().StringVar(&f.header, "header", "", "Header comment of the module")
	cmd.Flags().StringVar(&f.formatter, "formatter", "", "Formatter: builtin, prettier or none")
	cmd.Flags().StringSliceVar(&f.features, "feature", nil, "Enable a feature-flag (mutation, subscription, typename)")
	return cmd
}

// runProject loads the schema of cfg and generates all of its outputs in
// parallel.
func runProject(ctx context.Context, logger *log.Logger, cfg *config.Config) error {
	files, err := cfg.SchemaFiles()
	if err != nil {
		return err
	}
	logger.Debug("loading schema", "files", files)
	s, err := load.Files(files...)
	if err != nil {
		return err
	}
	w := gen.NewWriter()
	if err := w.WriteAll(ctx, cfg.Jobs(s, gen.WithLogger(logger))...); err != nil {
		return err
	}
	m := w.Metrics()
	logger.Info("generated",
		"files", m.FilesGenerated,
		"bytes", m.TotalBytes,
		"warnings", m.Warnings,
		"duration", m.Duration,
	)
	return nil
}
