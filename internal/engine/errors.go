package engine

import "errors"

// Input errors. These surface to the caller and map to 400-class responses.
var (
	// ErrNoMoodData is returned when the merged log set is empty.
	ErrNoMoodData = errors.New("no mood data")

	// ErrMissingMood is returned when a log lacks a mood value.
	ErrMissingMood = errors.New("missing mood value in logs")
)

// Recoverable analysis conditions. Never surfaced as top-level failures; the
// engine falls back to the generic suggestion instead.
var (
	// ErrInsufficientData signals that survey logs are absent or incomplete,
	// so the clustering branch is skipped.
	ErrInsufficientData = errors.New("insufficient survey data for clustering")

	// ErrClusteringFailed signals a degenerate partition (too few distinct
	// points, or an empty cluster).
	ErrClusteringFailed = errors.New("clustering failed")
)

// IsInputError reports whether err belongs to the input-error class that the
// HTTP layer translates into a 400 response.
func IsInputError(err error) bool {
	return errors.Is(err, ErrNoMoodData) || errors.Is(err, ErrMissingMood)
}
