package config

import "os"

// Environment variables recognized by the application. There is no persisted
// configuration; the environment is the only settings store.
const (
	// EnvPlayerPath overrides mpv binary discovery with an explicit path.
	EnvPlayerPath = "QUICKPLAY_MPV_PATH"

	// EnvSelectedFiles carries a newline-separated list of pre-selected file
	// paths, used in place of the clipboard-simulation selection probe.
	EnvSelectedFiles = "QUICKPLAY_SELECTED_FILES"

	// EnvNautilusSelection is the variable Nautilus scripts export for the
	// current selection; honored as an alternative to EnvSelectedFiles.
	EnvNautilusSelection = "NAUTILUS_SCRIPT_SELECTED_FILE_PATHS"

	// EnvLogLevel sets the log verbosity (logrus level names).
	EnvLogLevel = "QUICKPLAY_LOG_LEVEL"
)

// Default values
const (
	DefaultLogLevel = "info"
)

// Settings reads application configuration from the process environment.
type Settings struct{}

// NewSettings creates a new settings reader.
func NewSettings() *Settings {
	return &Settings{}
}

// PlayerPath returns the configured mpv binary path, or "" to use discovery.
func (s *Settings) PlayerPath() string {
	return os.Getenv(EnvPlayerPath)
}

// LogLevel returns the configured log level.
func (s *Settings) LogLevel() string {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		return DefaultLogLevel
	}
	return level
}

// SelectionEnv returns the raw pre-selected file list from the environment,
// or "" when no selection channel is set.
func (s *Settings) SelectionEnv() string {
	if raw := os.Getenv(EnvSelectedFiles); raw != "" {
		return raw
	}
	return os.Getenv(EnvNautilusSelection)
}
