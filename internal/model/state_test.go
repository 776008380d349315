package model

import (
	"runtime"
	"testing"
)

func TestPlayerStateString(t *testing.T) {
	tests := []struct {
		state    PlayerState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateLaunchRequested, "LaunchRequested"},
		{StateRunning, "Running"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestPlayerStateIsActive(t *testing.T) {
	tests := []struct {
		state    PlayerState
		expected bool
	}{
		{StateIdle, false},
		{StateLaunchRequested, true},
		{StateRunning, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.expected {
				t.Errorf("IsActive() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSessionDisplayTitle(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/videos/episode 01.mkv", "episode 01"},
		{"trailer", "trailer"},
		{"", ""},
	}
	if runtime.GOOS != "windows" {
		// Backslashes are literal path characters here.
		tests = append(tests, struct {
			path     string
			expected string
		}{"C:\\videos\\clip.mp4", "C:\\videos\\clip"})
	}

	for _, tt := range tests {
		s := Session{Path: tt.path}
		if got := s.DisplayTitle(); got != tt.expected {
			t.Errorf("DisplayTitle(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
