package model

// Package model defines domain data structures used across the app: the
// playback session value and the player state enum. Values are transient and
// live only for the current process.
