//go:build windows

package player

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}

// terminate kills the process. mpv has no graceful signal path on Windows.
func terminate(cmd *exec.Cmd) {
	_ = cmd.Process.Kill()
}
