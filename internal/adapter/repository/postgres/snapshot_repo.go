package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/millbooks/millbooks/internal/domain"
)

// SnapshotRepository implements usecase.SnapshotRepository on top of two
// tables: one row per snapshot version, one JSONB row per top-level ledger
// record. A snapshot is written once and never updated.
type SnapshotRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Save stores a full ledger tree under a new version.
func (r *SnapshotRepository) Save(ctx context.Context, info domain.SnapshotInfo, snap domain.Snapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO snapshots (version, taken_at) VALUES ($1, $2)`,
		info.Version, info.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot %s: %w", info.Version, err)
	}

	batch := &pgx.Batch{}
	for category, records := range snap {
		for recordID, record := range records {
			raw, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("marshal record %s/%s: %w", category, recordID, err)
			}

			batch.Queue(
				`INSERT INTO snapshot_records (snapshot_version, category, record_id, record)
				 VALUES ($1, $2, $3, $4)`,
				info.Version, category, recordID, raw,
			)
		}
	}

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert snapshot records: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Load materializes one snapshot version as the in-memory tree the rollup
// engine consumes.
func (r *SnapshotRepository) Load(ctx context.Context, version string) (domain.Snapshot, error) {
	var snap domain.Snapshot

	err := r.retrier.Retry(ctx, func() error {
		var exists bool
		err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM snapshots WHERE version = $1)`, version,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrSnapshotNotFound
		}

		rows, err := r.pool.Query(ctx,
			`SELECT category, record_id, record
			 FROM snapshot_records
			 WHERE snapshot_version = $1`, version,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		snap = make(domain.Snapshot)
		for rows.Next() {
			var (
				category string
				recordID string
				raw      []byte
			)
			if err := rows.Scan(&category, &recordID, &raw); err != nil {
				return err
			}

			var record domain.Record
			if err := json.Unmarshal(raw, &record); err != nil {
				return fmt.Errorf("unmarshal record %s/%s: %w", category, recordID, err)
			}

			if snap[category] == nil {
				snap[category] = make(map[string]domain.Record)
			}
			snap[category][recordID] = record
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Latest returns the most recently stored snapshot version. Versions are
// ULIDs, so lexicographic order is creation order.
func (r *SnapshotRepository) Latest(ctx context.Context) (domain.SnapshotInfo, error) {
	var info domain.SnapshotInfo

	err := r.retrier.Retry(ctx, func() error {
		err := r.pool.QueryRow(ctx,
			`SELECT version, taken_at FROM snapshots ORDER BY version DESC LIMIT 1`,
		).Scan(&info.Version, &info.TakenAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSnapshotNotFound
		}
		return err
	})
	if err != nil {
		return domain.SnapshotInfo{}, err
	}

	return info, nil
}

// ListVersions lists stored snapshot versions, newest first.
func (r *SnapshotRepository) ListVersions(ctx context.Context, limit int) ([]domain.SnapshotInfo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT version, taken_at FROM snapshots ORDER BY version DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := make([]domain.SnapshotInfo, 0, limit)
	for rows.Next() {
		var info domain.SnapshotInfo
		if err := rows.Scan(&info.Version, &info.TakenAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	return infos, rows.Err()
}
