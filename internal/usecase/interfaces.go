package usecase

import (
	"context"
	"time"

	"github.com/millbooks/millbooks/internal/domain"
)

// SnapshotRepository defines data access for ledger snapshots.
type SnapshotRepository interface {
	Save(ctx context.Context, info domain.SnapshotInfo, snap domain.Snapshot) error
	Load(ctx context.Context, version string) (domain.Snapshot, error)
	Latest(ctx context.Context) (domain.SnapshotInfo, error)
	ListVersions(ctx context.Context, limit int) ([]domain.SnapshotInfo, error)
}

// ReportCache memoizes computed rollups keyed by snapshot version and range.
// A miss is (nil, nil); cache failures must never fail a rollup.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IDGenerator generates unique snapshot version identifiers.
type IDGenerator interface {
	Generate() string
}
