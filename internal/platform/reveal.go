package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager fallbacks on Linux
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// RevealInFileManager opens the system file manager with the file highlighted
// where the platform supports it, or with its parent directory shown.
func RevealInFileManager(path string) error {
	if path == "" {
		return fmt.Errorf("no file to reveal")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return revealMacOS(absPath)
	case OSWindows:
		return revealWindows(absPath)
	case OSLinux:
		return revealLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealMacOS opens Finder with the file selected
func revealMacOS(path string) error {
	return exec.Command(OpenCommand, MacOSSelectFlag, path).Run()
}

// revealWindows opens Explorer with the file selected
func revealWindows(path string) error {
	return exec.Command(ExplorerCommand, WindowsSelectParam, path).Run()
}

// revealLinux opens the directory containing the file
// Note: file selection is not standardized on Linux, so the parent directory
// is opened instead
func revealLinux(path string) error {
	dir := filepath.Dir(path)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
