package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/tempnamed/internal/app"
	"github.com/dotcommander/tempnamed/internal/output"
	"github.com/dotcommander/tempnamed/pkg/tempdir"
	"github.com/dotcommander/tempnamed/pkg/tempnamed"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and temp-root writability",
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := app.ConfigDir()
			if err != nil {
				return cmdErr(err)
			}

			var (
				configOK  bool
				configErr string
			)
			if err := app.EnsureConfigDir(); err != nil {
				configErr = err.Error()
			} else {
				configOK = true
			}

			root, rootSource, err := app.ResolveTempRootDetailed()
			rootErr := ""
			if err != nil {
				rootErr = err.Error()
			}

			probeDir := root
			if probeDir == "" {
				probeDir = os.TempDir()
			}

			// Probe with an exclusive create so a stale probe file from an
			// earlier run just shifts this one to a suffixed name.
			var (
				writeOK  bool
				writeErr string
			)
			f, probePath, err := tempnamed.CreateFile(tempnamed.Options{Name: "doctor-probe", Dir: probeDir})
			if err != nil {
				writeErr = err.Error()
			} else {
				writeOK = true
				_ = f.Close()
				_ = os.Remove(probePath)
			}

			// Run one managed directory through its whole lifecycle:
			// create, register, drain.
			var (
				managedOK  bool
				managedErr string
			)
			prov := &tempdir.Provider{Root: root, Prefix: "tempnamed-doctor-"}
			if _, err := prov.CreateManaged(); err != nil {
				managedErr = err.Error()
			} else if err := tempdir.Cleanup(); err != nil {
				managedErr = err.Error()
			} else {
				managedOK = true
			}

			type resp struct {
				ConfigDir      string `json:"config_dir"`
				ConfigOK       bool   `json:"config_ok"`
				ConfigErr      string `json:"config_error,omitempty"`
				TempRoot       string `json:"temp_root,omitempty"`
				TempRootSource string `json:"temp_root_source,omitempty"`
				TempRootErr    string `json:"temp_root_error,omitempty"`
				WriteOK        bool   `json:"write_ok"`
				WriteErr       string `json:"write_error,omitempty"`
				ManagedOK      bool   `json:"managed_ok"`
				ManagedErr     string `json:"managed_error,omitempty"`
				Hint           string `json:"hint,omitempty"`
			}
			hint := ""
			if !writeOK || !managedOK {
				hint = "If this is running in a sandboxed environment, set temp_root to a writable location or use --temp-root."
			}
			return output.PrintSuccess(resp{
				ConfigDir:      configDir,
				ConfigOK:       configOK,
				ConfigErr:      configErr,
				TempRoot:       root,
				TempRootSource: rootSource,
				TempRootErr:    rootErr,
				WriteOK:        writeOK,
				WriteErr:       writeErr,
				ManagedOK:      managedOK,
				ManagedErr:     managedErr,
				Hint:           hint,
			})
		},
	}

	// keep a local hidden flag in case we want to expand later without changing UX
	cmd.Flags().Bool("verbose", false, "Show more details")
	_ = cmd.Flags().MarkHidden("verbose")

	return cmd
}
