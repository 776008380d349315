package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/quickplay/internal/hotkey"
	"github.com/ytget/quickplay/internal/logging"
	"github.com/ytget/quickplay/internal/media"
	"github.com/ytget/quickplay/internal/model"
	"github.com/ytget/quickplay/internal/platform"
	"github.com/ytget/quickplay/internal/player"
)

// reopenGuard suppresses a toggle arriving right after a close. Without it
// the Ctrl+Space that closed the window would immediately reopen it when the
// keypress is seen twice.
const reopenGuard = 500 * time.Millisecond

// PlayerController is the slice of the player the coordinator drives.
type PlayerController interface {
	Play(path string) error
	Stop()
	IsPlaying() bool
	SetOnClose(fn func(model.Session))
}

// SelectionProbe reports the file selected in the active file manager.
type SelectionProbe interface {
	FirstVideo() (string, bool)
}

// KeyListener delivers keyboard events and scopes the navigation keys to the
// preview lifetime.
type KeyListener interface {
	Start() error
	Stop()
	Events() <-chan hotkey.Event
	SetPreviewActive(active bool)
}

// TrayPresenter is the slice of the tray the coordinator drives.
type TrayPresenter interface {
	Run()
	Quit()
	SetActive(active bool)
}

// App is the coordinator. It owns the preview state.
type App struct {
	player PlayerController
	probe  SelectionProbe
	keys   KeyListener
	tray   TrayPresenter

	actions chan hotkey.Event

	mu       sync.Mutex
	current  string
	active   bool
	closedAt time.Time
	guard    time.Duration

	done chan struct{}
	log  *logrus.Entry
}

// New creates the coordinator. The tray is attached separately because its
// menu actions need the App first.
func New(pl PlayerController, probe SelectionProbe, keys KeyListener) *App {
	return &App{
		player:  pl,
		probe:   probe,
		keys:    keys,
		actions: make(chan hotkey.Event, 8),
		guard:   reopenGuard,
		done:    make(chan struct{}),
		log:     logging.Module("app"),
	}
}

// SetTray attaches the tray presenter.
func (a *App) SetTray(tray TrayPresenter) {
	a.tray = tray
}

// Run starts the event loop and hands the calling goroutine to the tray.
// It returns when the tray loop ends.
func (a *App) Run() error {
	a.player.SetOnClose(a.handlePlayerClosed)

	if err := a.keys.Start(); err != nil {
		return fmt.Errorf("register hotkeys: %w", err)
	}
	go a.eventLoop()

	a.tray.Run()

	close(a.done)
	a.keys.Stop()
	a.player.Stop()
	return nil
}

func (a *App) eventLoop() {
	for {
		select {
		case <-a.done:
			return
		case e := <-a.keys.Events():
			a.handle(e)
		case e := <-a.actions:
			a.handle(e)
		}
	}
}

func (a *App) handle(e hotkey.Event) {
	a.log.WithField("event", e).Debug("handling")
	switch e {
	case hotkey.Toggle:
		a.previewOrClose()
	case hotkey.NavigatePrevious:
		a.navigate(-1)
	case hotkey.NavigateNext:
		a.navigate(1)
	case hotkey.Close:
		a.closePreview()
	}
}

// TogglePreview requests a toggle from outside the event loop, for the tray
// menu. Non-blocking so a stuck loop cannot freeze the tray.
func (a *App) TogglePreview() {
	select {
	case a.actions <- hotkey.Toggle:
	default:
	}
}

// previewOrClose is the toggle action: close a running preview, otherwise
// look up the selection and open one.
func (a *App) previewOrClose() {
	if a.player.IsPlaying() {
		a.closePreview()
		return
	}

	a.mu.Lock()
	sinceClose := time.Since(a.closedAt)
	a.mu.Unlock()
	if sinceClose < a.guard {
		a.log.Debug("toggle ignored right after close")
		return
	}

	path, ok := a.probe.FirstVideo()
	if !ok {
		a.log.Info("no video selected in the file manager")
		return
	}
	a.playVideo(path)
}

func (a *App) playVideo(path string) {
	if !media.IsVideoFile(path) {
		a.log.WithField("file", path).Info("selection is not a video file")
		return
	}

	if err := a.player.Play(path); err != nil {
		if errors.Is(err, player.ErrNotFound) {
			for _, line := range player.InstallHints() {
				fmt.Println(line)
			}
			a.log.Error("mpv is not installed")
			return
		}
		a.log.WithError(err).Error("failed to start playback")
		return
	}

	a.mu.Lock()
	a.current = path
	a.active = true
	a.mu.Unlock()
	a.setActive(true)
}

// navigate switches to a sibling video. No-op when nothing is playing or the
// folder holds no other videos.
func (a *App) navigate(step int) {
	a.mu.Lock()
	current := a.current
	active := a.active
	a.mu.Unlock()
	if !active || current == "" {
		return
	}

	var next string
	var ok bool
	if step < 0 {
		next, ok = media.PreviousVideo(current)
	} else {
		next, ok = media.NextVideo(current)
	}
	if !ok || next == current {
		return
	}
	a.playVideo(next)
}

// closePreview stops playback. The close timestamp arms the reopen guard.
func (a *App) closePreview() {
	a.mu.Lock()
	a.closedAt = time.Now()
	a.current = ""
	a.active = false
	a.mu.Unlock()

	a.player.Stop()
	a.setActive(false)
}

// handlePlayerClosed reacts to the window being closed from mpv itself. No
// guard here: the user closed it deliberately, a fresh toggle should work.
func (a *App) handlePlayerClosed(s model.Session) {
	a.log.WithField("file", s.DisplayTitle()).Debug("player window closed")
	a.mu.Lock()
	a.current = ""
	a.active = false
	a.mu.Unlock()
	a.setActive(false)
}

// RevealCurrent shows the playing file in the system file manager.
func (a *App) RevealCurrent() {
	a.mu.Lock()
	current := a.current
	a.mu.Unlock()
	if current == "" {
		return
	}
	if err := platform.RevealInFileManager(current); err != nil {
		a.log.WithError(err).Warn("failed to reveal file")
	}
}

// Quit stops everything and ends the tray loop.
func (a *App) Quit() {
	a.player.Stop()
	a.tray.Quit()
}

func (a *App) setActive(active bool) {
	a.keys.SetPreviewActive(active)
	if a.tray != nil {
		a.tray.SetActive(active)
	}
}
