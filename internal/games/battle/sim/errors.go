package sim

import "errors"

var (
	// ErrLevelNotFound is returned when a stage file cannot be loaded.
	ErrLevelNotFound = errors.New("sim: level not found")
	// ErrMalformedLevel is returned when a stage file does not fit the grid.
	ErrMalformedLevel = errors.New("sim: malformed level")
	// ErrUnknownTarget is returned by a timer effect whose entity is gone.
	ErrUnknownTarget = errors.New("sim: unknown effect target")
)
