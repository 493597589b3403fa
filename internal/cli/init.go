package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/gqlselect/internal/config"
)

func newInitCmd(o *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a project file",
		Long: `Create a gqlselect.yml project file with the default settings.

Examples:
  gqlselect init
  gqlselect init -c api/gqlselect.yml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(o.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", o.configPath)
			}
			if err := config.Save(o.configPath, config.Default()); err != nil {
				return err
			}
			o.logger.Info("created project file", "path", o.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing project file")
	return cmd
}
