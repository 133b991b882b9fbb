package geom

import "errors"

var (
	// ErrNonPositive is returned when a dimension that must be > 0 is not.
	ErrNonPositive = errors.New("dimension must be positive")

	// ErrTooFewSegments is returned for circles approximated by fewer than
	// three segments.
	ErrTooFewSegments = errors.New("at least 3 segments are required")

	// ErrDegenerate is returned when parameters collapse a shape, e.g. a
	// ring whose wall consumes the whole radius.
	ErrDegenerate = errors.New("degenerate geometry")

	// ErrHoleOutside is returned when a hole does not fit inside its outer loop.
	ErrHoleOutside = errors.New("hole exceeds outer profile")
)
