// Package tray renders the status icon and its menu. The icon doubles as a
// state indicator, switching color while a preview is playing.
package tray
