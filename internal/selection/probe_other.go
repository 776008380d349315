//go:build !linux && !windows

package selection

import (
	"github.com/sirupsen/logrus"

	"github.com/ytget/quickplay/internal/config"
	"github.com/ytget/quickplay/internal/logging"
)

// envProbe has no native selection source. It still honors the environment
// channel, so platforms without a probe keep playback, the tray and hotkeys.
type envProbe struct {
	settings *config.Settings
	log      *logrus.Entry
}

// New returns the selection probe for this platform.
func New(settings *config.Settings) Probe {
	p := &envProbe{settings: settings, log: logging.Module("selection")}
	p.log.Warn("no native selection probe for this platform, set QUICKPLAY_SELECTED_FILES")
	return p
}

func (p *envProbe) FileManagerActive() bool {
	return p.settings.SelectionEnv() != ""
}

func (p *envProbe) SelectedFiles() []string {
	return parsePaths(p.settings.SelectionEnv())
}

func (p *envProbe) FirstVideo() (string, bool) {
	return firstVideo(p)
}
