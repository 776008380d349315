package platform

// Package platform contains OS integration glue: revealing files in the
// system file manager across desktops.
