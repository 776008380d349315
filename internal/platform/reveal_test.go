package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRevealInFileManager_EmptyPath(t *testing.T) {
	err := RevealInFileManager("")
	if err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestRevealInFileManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.mkv")

	err := RevealInFileManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}
