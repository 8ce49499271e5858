package app

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings represents configuration loaded from config.yaml.
// Field names match snake_case YAML keys.
type Settings struct {
	TempRoot    string `yaml:"temp_root"`
	SuffixStart string `yaml:"suffix_start"`
}

// settingsOnce, settings, settingsErr implement the sync.Once lazy-load singleton for config.
// tempRootOverrideMu and tempRootOverride implement a mutex-protected process-wide override for CLI --temp-root.
// These globals are required by the sync.Once pattern and the RWMutex pattern; they cannot be avoided.
//
//nolint:gochecknoglobals // sync.Once singleton + RWMutex override are intentional process-wide state
var (
	settingsOnce sync.Once
	settings     Settings
	settingsErr  error

	tempRootOverrideMu sync.RWMutex
	tempRootOverride   string
)

// SetTempRootOverride sets a process-wide temp-root override.
// Intended for CLI flag support (e.g. --temp-root).
func SetTempRootOverride(path string) {
	tempRootOverrideMu.Lock()
	tempRootOverride = path
	tempRootOverrideMu.Unlock()
}

func getTempRootOverride() string {
	tempRootOverrideMu.RLock()
	v := tempRootOverride
	tempRootOverrideMu.RUnlock()
	return v
}

// LoadSettings loads configuration once using the documented lookup order.
// Lookup order (first found wins):
// 1) ~/.config/tempnamed/config.yaml
// 2) /etc/tempnamed/config.yaml
// 3) ./config.yaml (lowest priority; allows repo-local overrides if desired)
// Environment variables are handled separately.
func LoadSettings() (Settings, error) {
	settingsOnce.Do(func() {
		settings = Settings{}

		// 1) User config (~/.config/tempnamed/config.yaml)
		dir, err := ConfigDir()
		if err != nil {
			settingsErr = err
			return
		}
		if s, err := loadSettingsFile(filepath.Join(dir, "config.yaml")); err == nil {
			settings = s
			return
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			settingsErr = err
			return
		}

		// 2) /etc
		if s, err := loadSettingsFile(filepath.Join(string(os.PathSeparator), "etc", "tempnamed", "config.yaml")); err == nil {
			settings = s
			return
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			settingsErr = err
			return
		}

		// 3) Local ./config.yaml (lowest priority)
		if s, err := loadSettingsFile("config.yaml"); err == nil {
			settings = s
			return
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			settingsErr = err
			return
		}
	})

	return settings, settingsErr
}

func loadSettingsFile(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// DefaultSuffixStart returns the configured first fallback suffix, or "" when
// unset or when config loading fails. Callers fall back to the library
// default on "".
func DefaultSuffixStart() string {
	s, err := LoadSettings()
	if err != nil {
		return ""
	}
	return s.SuffixStart
}
