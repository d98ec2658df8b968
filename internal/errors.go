package internal

import "errors"

// Fatal encode errors. Both must reach the caller unwrapped enough for
// errors.Is; nothing recovers from them silently.
var (
	// ErrNoAnchorAvailable means the password yields no valid anchor at all,
	// or none with the direction a chunk branch requires.
	ErrNoAnchorAvailable = errors.New("no anchor available for the requested direction")

	// ErrPlacementCapacityExceeded means even the dense tight-fit fallback
	// could not fit every chunk into the requested grid capacity.
	ErrPlacementCapacityExceeded = errors.New("placement capacity exceeded")

	// ErrWeakPassword is the sentinel for password policy rejections.
	ErrWeakPassword = errors.New("weak password")
)
