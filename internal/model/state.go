package model

// PlayerState represents the lifecycle state of the player controller.
type PlayerState string

const (
	// StateIdle means no player process is tracked.
	StateIdle PlayerState = "Idle"

	// StateLaunchRequested means a launch is in progress but the process has
	// not been confirmed running yet.
	StateLaunchRequested PlayerState = "LaunchRequested"

	// StateRunning means a player process is tracked and alive.
	StateRunning PlayerState = "Running"
)

// String returns the string representation of PlayerState.
func (ps PlayerState) String() string {
	return string(ps)
}

// IsActive returns true if a playback attempt or session is underway.
func (ps PlayerState) IsActive() bool {
	return ps == StateLaunchRequested || ps == StateRunning
}
