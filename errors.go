package scmap

import "errors"

// Sentinel errors returned by NewMap. Malformed inputs are programmer
// error (spec.md §7): they are never recovered from mid-pipeline, only
// reported back to the caller so construction can abort cleanly.
var (
	// ErrInvalidInput is returned when the three input grids have
	// mismatched dimensions, or the playable box falls outside the grid.
	ErrInvalidInput = errors.New("scmap: invalid input")

	// ErrCollaboratorUnavailable is returned when the path-finder
	// collaborator cannot be built from a mask produced during the
	// pipeline.
	ErrCollaboratorUnavailable = errors.New("scmap: path-finder collaborator unavailable")
)
