package commands

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tempnamed/internal/app"
	"github.com/dotcommander/tempnamed/internal/output"
)

// Execute runs the CLI application.
func Execute(version string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	root := &cobra.Command{
		Use:           "tempnamed",
		Short:         "Create files and directories under a preferred name, with suffixed fallbacks",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			showVersion, _ := cmd.Flags().GetBool("version")
			if showVersion {
				type resp struct {
					Version string `json:"version"`
				}
				return output.PrintSuccess(resp{Version: version})
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.EnsureConfigDir(); err != nil {
				return err
			}

			// Wire --temp-root into the app-level resolver.
			if tempRoot, err := cmd.Flags().GetString("temp-root"); err == nil && tempRoot != "" {
				app.SetTempRootOverride(tempRoot)
			}

			return nil
		},
	}

	root.PersistentFlags().String("temp-root", "", "Parent directory for managed temp directories; wins over TEMPNAMED_TMPDIR and config temp_root")
	root.Flags().BoolP("version", "v", false, "version for tempnamed")

	root.AddCommand(NewFileCmd())
	root.AddCommand(NewDirCmd())
	root.AddCommand(NewCandidatesCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(NewDoctorCmd())
	root.AddCommand(newSchemaCmd(root))

	err := root.Execute()
	if err != nil {
		var pe printedError
		if !errors.As(err, &pe) {
			slog.Error("command failed", "error", err.Error())
		}
	}
	return err
}
