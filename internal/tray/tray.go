package tray

import (
	"fmt"
	"sync"

	"fyne.io/systray"
	"github.com/sirupsen/logrus"

	"github.com/ytget/quickplay/internal/logging"
)

// Presenter drives the tray icon and menu on the main thread.
type Presenter struct {
	onPreview func()
	onReveal  func()
	onQuit    func()

	mu     sync.Mutex
	ready  bool
	active bool
	reveal *systray.MenuItem

	version string
	log     *logrus.Entry
}

// New creates a presenter wired to the given actions.
func New(version string, onPreview, onReveal, onQuit func()) *Presenter {
	return &Presenter{
		onPreview: onPreview,
		onReveal:  onReveal,
		onQuit:    onQuit,
		version:   version,
		log:       logging.Module("tray"),
	}
}

// Run hands the calling goroutine to the tray loop. It returns when Quit is
// called or the tray is dismissed.
func (p *Presenter) Run() {
	systray.Run(p.onReady, p.onExit)
}

// Quit ends the tray loop and with it Run.
func (p *Presenter) Quit() {
	systray.Quit()
}

// SetActive switches the icon between the idle and playing variants and
// toggles the menu entries that need a current file.
func (p *Presenter) SetActive(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = active
	if !p.ready {
		return
	}
	systray.SetIcon(trayIcon(active))
	if p.reveal != nil {
		if active {
			p.reveal.Enable()
		} else {
			p.reveal.Disable()
		}
	}
}

func (p *Presenter) onReady() {
	systray.SetTitle("QuickPlay")
	systray.SetTooltip("QuickPlay: Ctrl+Space previews the selected video")

	hint := systray.AddMenuItem("Ctrl+Space / Ctrl+Enter: preview selection", "")
	hint.Disable()
	navHint := systray.AddMenuItem("Up/Down: switch file, Esc: close", "")
	navHint.Disable()
	systray.AddSeparator()

	preview := systray.AddMenuItem("Preview Selected Video", "Open the selected file in mpv")
	reveal := systray.AddMenuItem("Show in Folder", "Reveal the playing file in the file manager")
	reveal.Disable()
	systray.AddSeparator()
	about := systray.AddMenuItem("About QuickPlay", "")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Exit QuickPlay")

	p.mu.Lock()
	p.ready = true
	p.reveal = reveal
	active := p.active
	p.mu.Unlock()

	systray.SetIcon(trayIcon(active))
	if active {
		reveal.Enable()
	}

	p.log.Info("tray ready")
	go p.handleClicks(preview, reveal, about, quit)
}

func (p *Presenter) handleClicks(preview, reveal, about, quit *systray.MenuItem) {
	for {
		select {
		case <-preview.ClickedCh:
			p.onPreview()
		case <-reveal.ClickedCh:
			p.onReveal()
		case <-about.ClickedCh:
			p.printAbout()
		case <-quit.ClickedCh:
			p.onQuit()
			return
		}
	}
}

func (p *Presenter) printAbout() {
	fmt.Printf("QuickPlay %s\n", p.version)
	fmt.Println("Preview the video selected in your file manager with mpv.")
	fmt.Println("https://github.com/ytget/quickplay")
}

func (p *Presenter) onExit() {
	p.mu.Lock()
	p.ready = false
	p.reveal = nil
	p.mu.Unlock()
	p.log.Info("tray closed")
}
