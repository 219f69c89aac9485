package usecase

import (
	"context"
	"time"

	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/infrastructure/metrics"
)

// SnapshotUseCase handles snapshot ingestion and lookup.
type SnapshotUseCase struct {
	snapshots SnapshotRepository
	idGen     IDGenerator
	metrics   *metrics.Metrics
}

// NewSnapshotUseCase creates a new SnapshotUseCase. m may be nil to disable
// instrumentation.
func NewSnapshotUseCase(snapshots SnapshotRepository, idGen IDGenerator, m *metrics.Metrics) *SnapshotUseCase {
	return &SnapshotUseCase{
		snapshots: snapshots,
		idGen:     idGen,
		metrics:   m,
	}
}

// IngestInput is a full ledger tree to store as a new snapshot version.
type IngestInput struct {
	Tree    domain.Snapshot
	TakenAt time.Time // zero means now
}

// Ingest stores the tree as a new immutable snapshot version. Entries are
// not validated; the rollup engine is total over whatever is stored.
func (uc *SnapshotUseCase) Ingest(ctx context.Context, input IngestInput) (domain.SnapshotInfo, error) {
	takenAt := input.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}

	info := domain.SnapshotInfo{
		Version: uc.idGen.Generate(),
		TakenAt: takenAt,
	}

	if err := uc.snapshots.Save(ctx, info, input.Tree); err != nil {
		return domain.SnapshotInfo{}, err
	}

	if uc.metrics != nil {
		uc.metrics.SnapshotsIngested.Inc()

		records := 0
		for _, categoryRecords := range input.Tree {
			records += len(categoryRecords)
		}
		uc.metrics.SnapshotRecords.Observe(float64(records))
	}

	return info, nil
}

// Latest returns the most recent snapshot version.
func (uc *SnapshotUseCase) Latest(ctx context.Context) (domain.SnapshotInfo, error) {
	return uc.snapshots.Latest(ctx)
}

// ListVersions lists stored snapshot versions, newest first.
func (uc *SnapshotUseCase) ListVersions(ctx context.Context, limit int) ([]domain.SnapshotInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	if limit > 100 {
		limit = 100
	}

	return uc.snapshots.ListVersions(ctx, limit)
}
