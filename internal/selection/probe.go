package selection

import (
	"net/url"
	"os"
	"strings"

	"github.com/ytget/quickplay/internal/media"
)

// Probe answers "what is selected in the active file manager window".
type Probe interface {
	// FileManagerActive reports whether a supported file manager owns the
	// foreground window.
	FileManagerActive() bool

	// SelectedFiles returns the paths currently selected, in selection order.
	SelectedFiles() []string

	// FirstVideo returns the first selected video file, if any.
	FirstVideo() (string, bool)
}

// firstVideo filters a probe's selection through the video classifier.
func firstVideo(p Probe) (string, bool) {
	if !p.FileManagerActive() {
		return "", false
	}
	for _, path := range p.SelectedFiles() {
		if media.IsVideoFile(path) {
			return path, true
		}
	}
	return "", false
}

// parsePaths turns newline-separated clipboard or environment content into
// filesystem paths. file:// URIs are decoded; entries that do not exist on
// disk are discarded.
func parsePaths(raw string) []string {
	var paths []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "file://") {
			decoded, err := url.PathUnescape(strings.TrimPrefix(line, "file://"))
			if err != nil {
				continue
			}
			line = decoded
		}
		if _, err := os.Stat(line); err == nil {
			paths = append(paths, line)
		}
	}
	return paths
}
