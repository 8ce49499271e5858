package commands

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/tempnamed/internal/app"
)

// envelope mirrors the wire shape of output.Response for decoding captured
// stdout in tests.
type envelope struct {
	SchemaVersion   string            `json:"schema_version"`
	Success         bool              `json:"success"`
	Data            map[string]any    `json:"data"`
	Error           string            `json:"error"`
	ErrorCode       string            `json:"error_code"`
	ErrorContext    map[string]string `json:"error_context"`
	SuggestedAction string            `json:"suggested_action"`
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	require.NoError(t, w.Close())

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(b)
}

// runCommand executes cmd with args and returns the decoded JSON envelope
// from stdout alongside the command error.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (envelope, error) {
	t.Helper()

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)

	var runErr error
	out := captureStdout(t, func() {
		runErr = cmd.Execute()
	})

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env), "stdout was not a JSON envelope: %q", out)
	return env, runErr
}

// isolateEnv points HOME at a fresh directory and clears the temp-root env
// override so command behavior only depends on flags.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(app.EnvTempRoot, "")
}

func TestCmdErr_NilPassesThrough(t *testing.T) {
	require.NoError(t, cmdErr(nil))
}

func TestCmdErr_PrintsEnvelopeAndWraps(t *testing.T) {
	var wrapped error
	out := captureStdout(t, func() {
		wrapped = cmdErr(errors.New("boom"))
	})

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	require.False(t, env.Success)
	require.Equal(t, "boom", env.Error)

	require.EqualError(t, wrapped, "error already printed")
	var pe printedError
	require.ErrorAs(t, wrapped, &pe)
}
