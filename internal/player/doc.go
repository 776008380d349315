// Package player locates the mpv binary and supervises a single playback
// process. At most one preview runs at a time; launching a new one replaces
// the previous session.
package player
