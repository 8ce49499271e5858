package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvTempRoot overrides the parent directory for managed temp directories.
const EnvTempRoot = "TEMPNAMED_TMPDIR"

// GetTempRoot resolves the parent directory for managed temp directories.
// Order of precedence:
// 1) CLI override (e.g. --temp-root)
// 2) Environment variable: TEMPNAMED_TMPDIR
// 3) config.yaml: temp_root
// 4) Empty: the OS temp directory is used at creation time.
// A non-empty result is created if missing.
func GetTempRoot() (string, error) {
	if override := getTempRootOverride(); override != "" {
		return EnsureTempRoot(override)
	}

	if envRoot := os.Getenv(EnvTempRoot); envRoot != "" {
		return EnsureTempRoot(envRoot)
	}

	cfg, err := LoadSettings()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TempRoot != "" {
		return EnsureTempRoot(cfg.TempRoot)
	}

	return "", nil
}

// ResolveTempRootDetailed returns the resolved temp root along with the source of that decision.
// This is for debugging/reporting; normal code should use GetTempRoot.
func ResolveTempRootDetailed() (root string, source string, err error) {
	if override := getTempRootOverride(); override != "" {
		resolved, ensureErr := EnsureTempRoot(override)
		return resolved, "cli(--temp-root)", ensureErr
	}

	if envRoot := os.Getenv(EnvTempRoot); envRoot != "" {
		resolved, ensureErr := EnsureTempRoot(envRoot)
		return resolved, "env(TEMPNAMED_TMPDIR)", ensureErr
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("failed to determine config directory: %w", err)
	}

	// Config file order must match LoadSettings.
	configPaths := []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(string(os.PathSeparator), "etc", "tempnamed", "config.yaml"),
		"config.yaml",
	}

	for _, p := range configPaths {
		s, loadErr := loadSettingsFile(p)
		if loadErr == nil {
			if s.TempRoot != "" {
				resolved, ensureErr := EnsureTempRoot(s.TempRoot)
				return resolved, fmt.Sprintf("config(%s)", p), ensureErr
			}
			// File exists but no temp_root set; keep looking.
			continue
		}
		if errors.Is(loadErr, os.ErrNotExist) {
			continue
		}
		return "", "", fmt.Errorf("failed to load config %s: %w", p, loadErr)
	}

	return "", "default(os temp dir)", nil
}

// EnsureTempRoot creates the temp root if it does not exist yet. Created
// levels are owner-only, matching the mode of entries created inside.
func EnsureTempRoot(root string) (string, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		return "", fmt.Errorf("failed to create temp root: %w", err)
	}
	return root, nil
}
