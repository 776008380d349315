package media

// Package media classifies video files by extension and enumerates sibling
// videos for previous/next navigation within a directory.
