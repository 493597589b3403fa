// Package cli provides the command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/syssam/gqlselect/internal/config"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	debug      bool
	logger     *log.Logger
}

// setupLogger creates the logger of the run from the flags.
func (o *options) setupLogger(w io.Writer) error {
	level := log.InfoLevel
	if o.logLevel != "" {
		l, err := log.ParseLevel(o.logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
		}
		level = l
	}
	if o.debug {
		level = log.DebugLevel
	}
	o.logger = log.NewWithOptions(w, log.Options{
		Prefix:          "gqlselect",
		Level:           level,
		ReportTimestamp: o.debug,
	})
	return nil
}

// NewRootCmd creates the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "gqlselect",
		Short: "Generate typed GraphQL selection builders for TypeScript",
		Long: `gqlselect turns a GraphQL schema into a TypeScript module of typed
selection builders: one shape interface and one selector value per object
and interface type, plus a query entry point.

Schemas are read from SDL files or an introspection result. Projects are
described by a gqlselect.yml file; run "gqlselect init" to create one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setupLogger(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", config.DefaultFile, "Path to the project file")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newGenerateCmd(o),
		newWatchCmd(o),
		newInitCmd(o),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gqlselect version %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the root command until it completes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
