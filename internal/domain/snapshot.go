package domain

import "time"

// Record is one top-level ledger record (a worker, a buyer, a supplier):
// scalar fields plus named sub-collections of child records keyed by id.
// Sub-collections and their children are plain maps, the shape JSON
// deserialization produces.
type Record map[string]any

// Snapshot is an immutable, point-in-time materialization of the whole
// ledger tree, keyed by category, then record id. The engine only ever
// reads it.
type Snapshot map[string]map[string]Record

// Category returns the records of one category, or nil when the snapshot
// holds no such slice.
func (s Snapshot) Category(name Category) map[string]Record {
	return s[string(name)]
}

// SnapshotInfo identifies one stored snapshot version.
type SnapshotInfo struct {
	Version string
	TakenAt time.Time
}
