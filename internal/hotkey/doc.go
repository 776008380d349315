// Package hotkey registers the global key bindings and translates key
// presses into application events. Navigation keys are only bound while a
// preview is on screen, so the rest of the desktop keeps its arrow keys.
package hotkey
