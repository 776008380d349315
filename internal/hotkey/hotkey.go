package hotkey

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	hk "golang.design/x/hotkey"

	"github.com/ytget/quickplay/internal/logging"
)

// Event is an action requested through the keyboard.
type Event int

const (
	// Toggle opens a preview for the current selection, or closes the
	// running one.
	Toggle Event = iota
	// NavigatePrevious switches to the previous video in the folder.
	NavigatePrevious
	// NavigateNext switches to the next video in the folder.
	NavigateNext
	// Close dismisses the running preview.
	Close
)

func (e Event) String() string {
	switch e {
	case Toggle:
		return "toggle"
	case NavigatePrevious:
		return "previous"
	case NavigateNext:
		return "next"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// eventBuffer bounds how many pending key presses queue up. Extra presses
// during a slow launch are dropped rather than replayed later.
const eventBuffer = 8

// toggleKeys are the bindings that open or close a preview, each combined
// with Ctrl.
var toggleKeys = []hk.Key{hk.KeySpace, hk.KeyReturn}

// Listener owns the OS-level hotkey registrations.
type Listener struct {
	mu      sync.Mutex
	toggles []*hk.Hotkey
	nav     []*hk.Hotkey
	navDone chan struct{}
	done    chan struct{}
	events  chan Event
	started bool
	log     *logrus.Entry
}

// NewListener creates a listener. Nothing is registered until Start.
func NewListener() *Listener {
	return &Listener{
		events: make(chan Event, eventBuffer),
		log:    logging.Module("hotkey"),
	}
}

// Events returns the channel application events are delivered on.
func (l *Listener) Events() <-chan Event {
	return l.events
}

// Start registers the toggle bindings. It fails only when no binding could
// be registered at all.
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return nil
	}

	l.done = make(chan struct{})
	for _, key := range toggleKeys {
		h := hk.New([]hk.Modifier{hk.ModCtrl}, key)
		if err := h.Register(); err != nil {
			l.log.WithError(err).Warn("toggle binding unavailable")
			continue
		}
		l.toggles = append(l.toggles, h)
		go l.forward(h, Toggle, l.done)
	}
	if len(l.toggles) == 0 {
		close(l.done)
		return errors.New("no global hotkey could be registered")
	}

	l.started = true
	l.log.WithField("bindings", len(l.toggles)).Info("hotkeys registered")
	return nil
}

// SetPreviewActive binds or releases the navigation keys. Binding them only
// while a preview runs keeps Up, Down and Escape free otherwise.
func (l *Listener) SetPreviewActive(active bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		return
	}
	if active == (l.nav != nil) {
		return
	}

	if !active {
		l.releaseNavLocked()
		return
	}

	l.navDone = make(chan struct{})
	bindings := []struct {
		key   hk.Key
		event Event
	}{
		{hk.KeyUp, NavigatePrevious},
		{hk.KeyDown, NavigateNext},
		{hk.KeyEscape, Close},
	}
	for _, b := range bindings {
		h := hk.New([]hk.Modifier{}, b.key)
		if err := h.Register(); err != nil {
			l.log.WithError(err).Warn("navigation binding unavailable")
			continue
		}
		l.nav = append(l.nav, h)
		go l.forward(h, b.event, l.navDone)
	}
	if l.nav == nil {
		close(l.navDone)
		l.navDone = nil
	}
}

// Stop releases every registration.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		return
	}

	l.releaseNavLocked()
	close(l.done)
	for _, h := range l.toggles {
		if err := h.Unregister(); err != nil {
			l.log.WithError(err).Debug("unregister")
		}
	}
	l.toggles = nil
	l.started = false
}

func (l *Listener) releaseNavLocked() {
	if l.nav == nil {
		return
	}
	close(l.navDone)
	for _, h := range l.nav {
		if err := h.Unregister(); err != nil {
			l.log.WithError(err).Debug("unregister")
		}
	}
	l.nav = nil
	l.navDone = nil
}

// forward relays key presses for one registration until done closes.
func (l *Listener) forward(h *hk.Hotkey, event Event, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-h.Keydown():
			l.emit(event)
		}
	}
}

// emit delivers without blocking. A full buffer means the application is
// already busy with earlier presses.
func (l *Listener) emit(event Event) {
	select {
	case l.events <- event:
	default:
		l.log.WithField("event", event).Debug("event dropped, buffer full")
	}
}
