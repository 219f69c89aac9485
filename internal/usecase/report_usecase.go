package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/engine"
	"github.com/millbooks/millbooks/internal/infrastructure/metrics"
)

// ReportUseCase computes ledger rollups from stored snapshots, memoizing
// results per (snapshot version, date range). The engine itself is pure;
// everything stateful lives here or below.
type ReportUseCase struct {
	snapshots SnapshotRepository
	cache     ReportCache
	cacheTTL  time.Duration
	metrics   *metrics.Metrics
}

// NewReportUseCase creates a new ReportUseCase. cache may be nil to disable
// memoization; m may be nil to disable instrumentation.
func NewReportUseCase(snapshots SnapshotRepository, cache ReportCache, cacheTTL time.Duration, m *metrics.Metrics) *ReportUseCase {
	return &ReportUseCase{
		snapshots: snapshots,
		cache:     cache,
		cacheTTL:  cacheTTL,
		metrics:   m,
	}
}

// RollupInput selects what to aggregate.
type RollupInput struct {
	// Version selects a snapshot; empty means the latest stored snapshot.
	Version string
	Range   domain.DateRange
}

// RollupResult is one computed report together with the snapshot it was
// computed from.
type RollupResult struct {
	Version string        `json:"version"`
	TakenAt time.Time     `json:"taken_at"`
	Report  domain.Report `json:"report"`
}

// Rollup computes the full rollup for one snapshot and date range. When no
// snapshot has ever been stored, the result is an all-zero report rather
// than an error.
func (uc *ReportUseCase) Rollup(ctx context.Context, input RollupInput) (*RollupResult, error) {
	info := domain.SnapshotInfo{Version: input.Version}
	if info.Version == "" {
		latest, err := uc.snapshots.Latest(ctx)
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return &RollupResult{Report: emptyReport()}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolve latest snapshot: %w", err)
		}
		info = latest
	}

	key := rollupCacheKey(info.Version, input.Range)
	if cached := uc.cachedResult(ctx, key); cached != nil {
		return cached, nil
	}

	loadStart := time.Now()
	snap, err := uc.snapshots.Load(ctx, info.Version)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", info.Version, err)
	}
	if uc.metrics != nil {
		uc.metrics.SnapshotLoadDuration.Observe(time.Since(loadStart).Seconds())
	}

	start := time.Now()
	events := engine.ExtractAll(snap)
	report := engine.Aggregate(events, input.Range)

	if uc.metrics != nil {
		uc.metrics.RollupsComputed.Inc()
		uc.metrics.RollupDuration.Observe(time.Since(start).Seconds())
		uc.metrics.EventsExtracted.Observe(float64(len(events)))
	}

	result := &RollupResult{
		Version: info.Version,
		TakenAt: info.TakenAt,
		Report:  report,
	}

	uc.storeResult(ctx, key, result)

	return result, nil
}

// CategoryRollup computes the rollup for a single category.
func (uc *ReportUseCase) CategoryRollup(ctx context.Context, name domain.Category, input RollupInput) (domain.Rollup, error) {
	if _, ok := domain.DescriptorFor(name); !ok {
		return domain.Rollup{}, domain.ErrUnknownCategory
	}

	result, err := uc.Rollup(ctx, input)
	if err != nil {
		return domain.Rollup{}, err
	}

	return result.Report.Categories[name], nil
}

func (uc *ReportUseCase) cachedResult(ctx context.Context, key string) *RollupResult {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil || raw == nil {
		if uc.metrics != nil {
			uc.metrics.CacheMisses.Inc()
		}
		return nil
	}

	var result RollupResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}

	if uc.metrics != nil {
		uc.metrics.CacheHits.Inc()
	}

	return &result
}

func (uc *ReportUseCase) storeResult(ctx context.Context, key string, result *RollupResult) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	// Best effort: a cache write failure only costs a recompute next time.
	_ = uc.cache.Set(ctx, key, raw, uc.cacheTTL)
}

func rollupCacheKey(version string, r domain.DateRange) string {
	return fmt.Sprintf("rollup:%s:%s", version, r.Key())
}

func emptyReport() domain.Report {
	return engine.Aggregate(nil, domain.DateRange{})
}
