package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tempnamed/internal/output"
	"github.com/dotcommander/tempnamed/pkg/tempnamed"
)

// NewFileCmd creates the file command.
func NewFileCmd() *cobra.Command {
	var (
		name        string
		dir         string
		inTemp      bool
		suffixStart string
	)

	cmd := &cobra.Command{
		Use:   "file",
		Short: "Create a file under the preferred name, falling back to suffixed names",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return cmdErr(errors.New("--name is required"))
			}

			opts, err := buildOptions(name, dir, inTemp, suffixStart)
			if err != nil {
				return cmdErr(err)
			}

			f, path, err := tempnamed.CreateFile(opts)
			if err != nil {
				return cmdErr(err)
			}
			if err := f.Close(); err != nil {
				return cmdErr(err)
			}

			type resp struct {
				Path string `json:"path"`
			}
			return output.PrintSuccess(resp{Path: path})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Preferred name (required)")
	cmd.Flags().StringVar(&dir, "dir", "", "Existing directory to create in; wins over --tmp")
	cmd.Flags().BoolVar(&inTemp, "tmp", false, "Create inside the managed temp directory")
	cmd.Flags().StringVar(&suffixStart, "suffix-start", "", "First fallback suffix; config suffix_start or 1 when empty")

	return cmd
}
