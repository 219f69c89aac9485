package domain

import "errors"

var (
	// ErrUnknownCategory is returned when a caller names a category that is
	// not in the descriptor table.
	ErrUnknownCategory = errors.New("unknown ledger category")
	// ErrSnapshotNotFound is returned when no snapshot exists for a
	// requested version, or no snapshot has been stored at all.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
