package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.patri/settings.json
type Settings struct {
	CaseDataDir string `json:"case_data_dir,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	DummyAPIs   *bool  `json:"dummy_apis,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	OperatorID  *int64 `json:"operator_id,omitempty"`
}

// GetPatriHome returns the patri home directory ($PATRI_HOME or ~/.patri)
func GetPatriHome() string {
	if home := os.Getenv("PATRI_HOME"); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".patri" // Fallback to relative path
	}
	return filepath.Join(homeDir, ".patri")
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() string {
	return filepath.Join(GetPatriHome(), "settings.json")
}

// GetSessionFilePath returns the path to the persisted session snapshot
func GetSessionFilePath() string {
	return filepath.Join(GetPatriHome(), "session.json")
}

// GetDBPath returns the path to the case database
func GetDBPath() string {
	return filepath.Join(GetPatriHome(), "cases.db")
}

// GetCaseDataDir returns the directory holding per-case evidence files
func GetCaseDataDir(settings *Settings) string {
	if settings != nil && settings.CaseDataDir != "" {
		return ExpandPath(settings.CaseDataDir)
	}
	return filepath.Join(GetPatriHome(), "cases")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}

// LoadSettings loads settings from $PATRI_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.CaseDataDir != "" {
		settings.CaseDataDir = ExpandPath(settings.CaseDataDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PATRI_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
