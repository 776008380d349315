package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Supported video extensions (lowercase, with leading dot).
var videoExtensions = map[string]struct{}{
	".mkv":  {},
	".avi":  {},
	".webm": {},
	".mp4":  {},
	".m4v":  {},
	".mov":  {},
	".wmv":  {},
	".flv":  {},
	".ts":   {},
	".mts":  {},
	".m2ts": {},
}

// IsVideoFile reports whether the path has a supported video extension,
// regardless of case.
func IsVideoFile(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ListVideoFiles returns all video files directly inside dir, sorted
// case-insensitively by full path. A missing or non-directory path yields an
// empty list.
func ListVideoFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var videos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsVideoFile(e.Name()) {
			videos = append(videos, filepath.Join(dir, e.Name()))
		}
	}

	sort.Slice(videos, func(i, j int) bool {
		return strings.ToLower(videos[i]) < strings.ToLower(videos[j])
	})
	return videos
}

// SiblingVideos returns all video files sharing current's parent directory.
func SiblingVideos(current string) []string {
	return ListVideoFiles(filepath.Dir(current))
}

// NextVideo returns the video following current among its siblings, wrapping
// around at the end. When current is no longer present in the directory the
// first sibling is returned. The second result is false when the directory
// holds no videos at all.
func NextVideo(current string) (string, bool) {
	return stepVideo(current, 1)
}

// PreviousVideo returns the video preceding current among its siblings,
// wrapping around at the start, falling back to the last sibling when current
// has vanished.
func PreviousVideo(current string) (string, bool) {
	return stepVideo(current, -1)
}

func stepVideo(current string, delta int) (string, bool) {
	siblings := SiblingVideos(current)
	if len(siblings) == 0 {
		return "", false
	}

	idx := -1
	for i, s := range siblings {
		if s == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Current file is gone; restart from the nearest end.
		if delta > 0 {
			return siblings[0], true
		}
		return siblings[len(siblings)-1], true
	}

	n := len(siblings)
	return siblings[(idx+delta+n)%n], true
}
