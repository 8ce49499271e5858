package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tempnamed/internal/app"
	"github.com/dotcommander/tempnamed/internal/output"
	"github.com/dotcommander/tempnamed/internal/sequence"
	"github.com/dotcommander/tempnamed/pkg/tempnamed"
)

// NewCandidatesCmd creates the candidates command. It previews the fallback
// sequence without touching the filesystem.
func NewCandidatesCmd() *cobra.Command {
	var (
		name        string
		suffixStart string
		count       int
	)

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Preview the fallback names for a base name without creating anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return cmdErr(errors.New("--name is required"))
			}
			if count < 1 {
				return cmdErr(errors.New("--count must be at least 1"))
			}

			if suffixStart == "" {
				suffixStart = app.DefaultSuffixStart()
			}
			if suffixStart == "" {
				suffixStart = tempnamed.DefaultSuffixStart
			}

			seq := sequence.New(name, suffixStart)
			names := make([]string, 0, count)
			for range count {
				names = append(names, seq.Next())
			}

			type resp struct {
				Name       string   `json:"name"`
				Candidates []string `json:"candidates"`
			}
			return output.PrintSuccess(resp{Name: name, Candidates: names})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Base name to expand (required)")
	cmd.Flags().StringVar(&suffixStart, "suffix-start", "", "First fallback suffix; config suffix_start or 1 when empty")
	cmd.Flags().IntVar(&count, "count", 5, "Number of candidates to show")

	return cmd
}
