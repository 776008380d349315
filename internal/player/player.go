package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/quickplay/internal/config"
	"github.com/ytget/quickplay/internal/logging"
	"github.com/ytget/quickplay/internal/model"
)

// ErrNotFound is returned when no mpv binary can be located.
var ErrNotFound = errors.New("mpv binary not found")

const defaultStopTimeout = 500 * time.Millisecond

// session tracks one running mpv process.
type session struct {
	cmd  *exec.Cmd
	info model.Session
	done chan struct{}
}

// Launcher starts and stops mpv processes and tracks the current session.
type Launcher struct {
	mu             sync.RWMutex
	sess           *session
	state          model.PlayerState
	onClose        func(model.Session)
	binaryOverride string
	stopTimeout    time.Duration
	log            *logrus.Entry
}

// NewLauncher creates a launcher. The binary path from settings, when set,
// overrides the platform search.
func NewLauncher(settings *config.Settings) *Launcher {
	return &Launcher{
		state:          model.StateIdle,
		binaryOverride: settings.PlayerPath(),
		stopTimeout:    defaultStopTimeout,
		log:            logging.Module("player"),
	}
}

// SetOnClose installs a callback fired when the current session's process
// exits on its own. It is not fired for sessions stopped through Stop.
func (l *Launcher) SetOnClose(fn func(model.Session)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onClose = fn
}

// Locate resolves the mpv binary path or returns ErrNotFound.
func (l *Launcher) Locate() (string, error) {
	if l.binaryOverride != "" {
		if _, err := os.Stat(l.binaryOverride); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, l.binaryOverride)
		}
		return l.binaryOverride, nil
	}
	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	if path, err := exec.LookPath(playerBinary()); err == nil {
		return path, nil
	}
	return "", ErrNotFound
}

// Play stops any current session and launches mpv for the given file. A
// missing binary is reported before anything is stopped.
func (l *Launcher) Play(path string) error {
	binary, err := l.Locate()
	if err != nil {
		return err
	}

	l.Stop()

	l.setState(model.StateLaunchRequested)

	cmd := exec.Command(binary, playerArgs(path)...)
	cmd.SysProcAttr = sysProcAttr()
	if err := cmd.Start(); err != nil {
		l.setState(model.StateIdle)
		return fmt.Errorf("start %s: %w", binary, err)
	}

	s := &session{
		cmd: cmd,
		info: model.Session{
			Path:      path,
			PID:       cmd.Process.Pid,
			StartedAt: time.Now(),
		},
		done: make(chan struct{}),
	}

	l.mu.Lock()
	l.sess = s
	l.state = model.StateRunning
	l.mu.Unlock()

	l.log.WithFields(logrus.Fields{"pid": s.info.PID, "file": filepath.Base(path)}).Info("playback started")
	go l.watch(s)
	return nil
}

// watch waits for the process and fires onClose unless the session was
// already replaced or stopped.
func (l *Launcher) watch(s *session) {
	err := s.cmd.Wait()
	close(s.done)

	l.mu.Lock()
	current := l.sess == s
	var fn func(model.Session)
	if current {
		l.sess = nil
		l.state = model.StateIdle
		fn = l.onClose
	}
	l.mu.Unlock()

	if !current {
		return
	}
	if err != nil {
		l.log.WithField("pid", s.info.PID).WithError(err).Debug("player exited")
	} else {
		l.log.WithField("pid", s.info.PID).Debug("player exited")
	}
	if fn != nil {
		fn(s.info)
	}
}

// Stop terminates the current session, if any. The session is untracked
// before termination so its exit watcher stays silent.
func (l *Launcher) Stop() {
	l.mu.Lock()
	s := l.sess
	l.sess = nil
	l.state = model.StateIdle
	l.mu.Unlock()

	if s == nil {
		return
	}

	terminate(s.cmd)
	select {
	case <-s.done:
	case <-time.After(l.stopTimeout):
		l.log.WithField("pid", s.info.PID).Warn("player did not exit, killing")
		_ = s.cmd.Process.Kill()
		<-s.done
	}
}

// IsPlaying reports whether a tracked session is still running.
func (l *Launcher) IsPlaying() bool {
	l.mu.RLock()
	s := l.sess
	l.mu.RUnlock()
	if s == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Current returns the session info of the running preview, if any.
func (l *Launcher) Current() (model.Session, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.sess == nil {
		return model.Session{}, false
	}
	return l.sess.info, true
}

// State returns the launcher state.
func (l *Launcher) State() model.PlayerState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Launcher) setState(state model.PlayerState) {
	l.mu.Lock()
	l.state = state
	l.mu.Unlock()
}

// InstallHints returns advisory lines for the current platform when mpv is
// missing.
func InstallHints() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			"mpv not found. Install it with:",
			"  winget install mpv",
			"or download from https://mpv.io/installation/",
		}
	case "darwin":
		return []string{
			"mpv not found. Install it with:",
			"  brew install mpv",
		}
	default:
		return []string{
			"mpv not found. Install it with your package manager, e.g.:",
			"  sudo apt install mpv",
			"  sudo dnf install mpv",
		}
	}
}

// playerArgs builds the mpv command line for previewing one file.
func playerArgs(path string) []string {
	title := filepath.Base(path)
	return []string{
		"--hwdec=auto",
		"--keep-open=yes",
		"--osc=yes",
		"--osd-level=1",
		"--autofit=80%",
		"--auto-window-resize=yes",
		"--title=" + title,
		"--force-window=immediate",
		"--input-default-bindings=no",
		"--input-vo-keyboard=no",
		path,
	}
}

func playerBinary() string {
	if runtime.GOOS == "windows" {
		return "mpv.exe"
	}
	return "mpv"
}

// searchPaths lists well-known install locations checked before $PATH.
func searchPaths() []string {
	switch runtime.GOOS {
	case "windows":
		var paths []string
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			paths = append(paths, filepath.Join(local, "Programs", "mpv", "mpv.exe"))
		}
		if programs := os.Getenv("PROGRAMFILES"); programs != "" {
			paths = append(paths, filepath.Join(programs, "mpv", "mpv.exe"))
		}
		return paths
	case "darwin":
		return []string{
			"/opt/homebrew/bin/mpv",
			"/usr/local/bin/mpv",
		}
	default:
		paths := []string{
			"/usr/bin/mpv",
			"/usr/local/bin/mpv",
		}
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".local", "bin", "mpv"))
		}
		return paths
	}
}
