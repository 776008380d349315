// Package app coordinates the selection probe, the player and the tray into
// the preview workflow. All state transitions happen on a single event loop
// fed by the hotkey listener and the tray menu.
package app
