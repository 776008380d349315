//go:build linux

package selection

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"

	"github.com/ytget/quickplay/internal/config"
	"github.com/ytget/quickplay/internal/logging"
)

// Known file manager process names.
var fileManagers = map[string]struct{}{
	"nautilus":           {},
	"org.gnome.nautilus": {},
	"dolphin":            {},
	"thunar":             {},
	"nemo":               {},
	"caja":               {},
	"pcmanfm":            {},
	"pcmanfm-qt":         {},
}

const (
	commandTimeout = 2 * time.Second

	// The clipboard is polled after the synthesized copy keystroke instead of
	// a single fixed sleep; the copy is still racy by nature.
	clipboardPollInterval = 20 * time.Millisecond
	clipboardPollBudget   = 300 * time.Millisecond
)

// linuxProbe reads the file manager selection by simulating a copy keystroke
// and inspecting the clipboard. The previous clipboard content is restored on
// every path.
type linuxProbe struct {
	settings *config.Settings
	log      *logrus.Entry
}

// New returns the selection probe for this platform.
func New(settings *config.Settings) Probe {
	return &linuxProbe{settings: settings, log: logging.Module("selection")}
}

func (p *linuxProbe) FileManagerActive() bool {
	out, err := runCommand("xdotool", "getactivewindow", "getwindowpid")
	if err != nil {
		return false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return false
	}

	name, err := runCommand("ps", "-p", strconv.Itoa(pid), "-o", "comm=")
	if err != nil {
		return false
	}
	_, ok := fileManagers[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (p *linuxProbe) SelectedFiles() []string {
	// An environment-provided selection takes precedence over the clipboard
	// trick (Nautilus scripts export one).
	if raw := p.settings.SelectionEnv(); raw != "" {
		return parsePaths(raw)
	}
	return p.selectionViaClipboard()
}

func (p *linuxProbe) FirstVideo() (string, bool) {
	return firstVideo(p)
}

// selectionViaClipboard copies the current selection into the clipboard with a
// synthesized Ctrl+C, reads it back, and restores the prior content.
func (p *linuxProbe) selectionViaClipboard() []string {
	saved, _ := clipboard.ReadAll()
	defer func() {
		if saved != "" {
			if err := clipboard.WriteAll(saved); err != nil {
				p.log.WithError(err).Debug("clipboard restore failed")
			}
		}
	}()

	if _, err := runCommand("xdotool", "key", "--clearmodifiers", "ctrl+c"); err != nil {
		p.log.WithError(err).Debug("copy keystroke failed")
		return nil
	}

	var clip string
	deadline := time.Now().Add(clipboardPollBudget)
	for {
		time.Sleep(clipboardPollInterval)
		cur, err := clipboard.ReadAll()
		if err == nil && cur != "" && cur != saved {
			clip = cur
			break
		}
		if time.Now().After(deadline) {
			clip = cur
			break
		}
	}

	return parsePaths(clip)
}

// runCommand runs a helper tool and returns its stdout.
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
