package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tempnamed/internal/app"
	"github.com/dotcommander/tempnamed/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location and the resolved temp root",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.ConfigDir()
			if err != nil {
				return cmdErr(err)
			}

			root, source, err := app.ResolveTempRootDetailed()
			if err != nil {
				return cmdErr(err)
			}

			type resp struct {
				ConfigFile     string `json:"config_file"`
				TempRoot       string `json:"temp_root,omitempty"`
				TempRootSource string `json:"temp_root_source"`
			}
			return output.PrintSuccess(resp{
				ConfigFile:     filepath.Join(dir, "config.yaml"),
				TempRoot:       root,
				TempRootSource: source,
			})
		},
	}
}
