package selection

// Package selection determines which files are currently selected in the OS
// file manager. One probe per operating system is chosen at startup; systems
// without a native backend fall back to the environment channel.
// Probing is best-effort throughout: failures degrade to an empty result and
// are never surfaced as errors.
