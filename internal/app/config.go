package app

import (
	"os"
	"path/filepath"
)

// ConfigDir returns ~/.config/tempnamed/ on all platforms.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tempnamed"), nil
}

// EnsureConfigDir creates the config directory and default config.yaml if missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return os.WriteFile(configFile, []byte(defaultConfig), 0600)
	}
	return nil
}

const defaultConfig = `# tempnamed configuration
# Run: tempnamed --help

# Optional: parent directory for managed temp directories.
# Can also be set via TEMPNAMED_TMPDIR or --temp-root.
# temp_root: /var/tmp

# Optional: default first fallback suffix for created names.
# suffix_start: "1"
`
