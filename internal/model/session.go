package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Session describes one external-player invocation, from launch until exit or
// explicit stop.
type Session struct {
	Path      string    // file being played
	PID       int       // player process id
	StartedAt time.Time // when the process was launched
}

// DisplayTitle returns the session's file name without its extension, or ""
// for a zero session.
func (s Session) DisplayTitle() string {
	if s.Path == "" {
		return ""
	}
	name := filepath.Base(s.Path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
