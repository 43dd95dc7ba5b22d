package urlbuilder

import "errors"

// Validation failures surfaced by the builder. Every error is a distinct
// sentinel so callers can branch with errors.Is; none of them is transient.
var (
	// ErrInvalidSize reports a non-positive map width or height.
	ErrInvalidSize = errors.New("urlbuilder: map size must be positive")

	// ErrSizeExceeded reports a width or height above the API maximum.
	ErrSizeExceeded = errors.New("urlbuilder: map size exceeds 640x640 pixels")

	// ErrInvalidPathWeight reports a non-positive stroke weight.
	ErrInvalidPathWeight = errors.New("urlbuilder: path weight must be at least 1 pixel")

	// ErrInvalidLabel reports a marker label that is neither a digit nor a
	// letter.
	ErrInvalidLabel = errors.New("urlbuilder: marker label must be a digit 0-9 or a letter A-Z")

	// ErrEmptyRequest reports a build attempted with no markers and no paths.
	ErrEmptyRequest = errors.New("urlbuilder: at least one marker or path is required")

	// ErrURLTooLong reports a generated URL above the API's documented limit.
	ErrURLTooLong = errors.New("urlbuilder: generated URL exceeds the 2048 character maximum")

	// ErrMapTypeUnrecognized guards against a MapType value outside the
	// declared enum. Unreachable through the exported API.
	ErrMapTypeUnrecognized = errors.New("urlbuilder: unrecognized map type")
)
