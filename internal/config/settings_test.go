package config

import "testing"

func TestLogLevelDefault(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	s := NewSettings()
	if got := s.LogLevel(); got != DefaultLogLevel {
		t.Errorf("LogLevel() = %q, expected %q", got, DefaultLogLevel)
	}

	t.Setenv(EnvLogLevel, "debug")
	if got := s.LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q, expected %q", got, "debug")
	}
}

func TestPlayerPath(t *testing.T) {
	t.Setenv(EnvPlayerPath, "")

	s := NewSettings()
	if got := s.PlayerPath(); got != "" {
		t.Errorf("PlayerPath() = %q, expected empty", got)
	}

	t.Setenv(EnvPlayerPath, "/opt/mpv/mpv")
	if got := s.PlayerPath(); got != "/opt/mpv/mpv" {
		t.Errorf("PlayerPath() = %q, expected /opt/mpv/mpv", got)
	}
}

func TestSelectionEnvPrecedence(t *testing.T) {
	t.Setenv(EnvSelectedFiles, "")
	t.Setenv(EnvNautilusSelection, "")

	s := NewSettings()
	if got := s.SelectionEnv(); got != "" {
		t.Errorf("SelectionEnv() = %q, expected empty", got)
	}

	t.Setenv(EnvNautilusSelection, "/data/b.mkv")
	if got := s.SelectionEnv(); got != "/data/b.mkv" {
		t.Errorf("SelectionEnv() = %q, expected nautilus value", got)
	}

	// The app-specific variable wins over the Nautilus one.
	t.Setenv(EnvSelectedFiles, "/data/a.mkv")
	if got := s.SelectionEnv(); got != "/data/a.mkv" {
		t.Errorf("SelectionEnv() = %q, expected %q", got, "/data/a.mkv")
	}
}
