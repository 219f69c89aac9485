package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/usecase"
)

func TestReportFromResult(t *testing.T) {
	takenAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	from := takenAt.AddDate(0, -1, 0)
	r := domain.NewDateRange(from, takenAt)

	result := &usecase.RollupResult{
		Version: "01TEST",
		TakenAt: takenAt,
		Report: domain.Report{
			Categories: map[domain.Category]domain.Rollup{
				domain.CategoryBoxOrders: domain.NewRollup(decimal.NewFromInt(1000), decimal.NewFromInt(400)),
			},
			Domains: map[domain.Domain]domain.Rollup{
				domain.DomainSales: domain.NewRollup(decimal.NewFromInt(1000), decimal.NewFromInt(400)),
			},
			Revenue: domain.NewRollup(decimal.NewFromInt(1000), decimal.NewFromInt(400)),
		},
	}

	resp := ReportFromResult(result, r)

	if resp.SnapshotVersion != "01TEST" {
		t.Fatalf("unexpected version: %q", resp.SnapshotVersion)
	}
	if resp.SnapshotTakenAt == nil || !resp.SnapshotTakenAt.Equal(takenAt) {
		t.Fatalf("unexpected taken_at: %v", resp.SnapshotTakenAt)
	}
	if resp.Range.From == nil || !resp.Range.From.Equal(from) {
		t.Fatalf("range not echoed back: %+v", resp.Range)
	}

	node, ok := resp.Categories["boxOrders"]
	if !ok {
		t.Fatalf("expected boxOrders in response, got %+v", resp.Categories)
	}
	if !node.Pending.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("unexpected pending: %s", node.Pending)
	}

	if _, ok := resp.Domains["sales"]; !ok {
		t.Fatalf("expected sales domain in response, got %+v", resp.Domains)
	}
}

func TestReportFromResult_OmitsZeroTakenAt(t *testing.T) {
	result := &usecase.RollupResult{
		Report: domain.Report{
			Categories: map[domain.Category]domain.Rollup{},
			Domains:    map[domain.Domain]domain.Rollup{},
		},
	}

	resp := ReportFromResult(result, domain.DateRange{})

	if resp.SnapshotTakenAt != nil {
		t.Fatalf("expected taken_at to be omitted for empty reports, got %v", resp.SnapshotTakenAt)
	}
	if resp.Range.From != nil || resp.Range.To != nil {
		t.Fatalf("expected nil range bounds, got %+v", resp.Range)
	}
}

func TestCategoriesFromDomain(t *testing.T) {
	resps := CategoriesFromDomain(domain.Descriptors())

	if len(resps) != len(domain.Descriptors()) {
		t.Fatalf("expected every descriptor to be listed, got %d", len(resps))
	}

	byName := map[string]string{}
	for _, c := range resps {
		byName[c.Name] = c.Domain
	}

	if byName["boxOrders"] != "sales" {
		t.Fatalf("expected boxOrders to be a sales category, got %q", byName["boxOrders"])
	}
	if byName["logsBought"] != "expense" {
		t.Fatalf("expected logsBought to be an expense category, got %q", byName["logsBought"])
	}
}

func TestSnapshotsFromDomain(t *testing.T) {
	now := time.Now()
	infos := []domain.SnapshotInfo{
		{Version: "v2", TakenAt: now},
		{Version: "v1", TakenAt: now.Add(-time.Hour)},
	}

	resps := SnapshotsFromDomain(infos)
	if len(resps) != 2 || resps[0].Version != "v2" || resps[1].Version != "v1" {
		t.Fatalf("SnapshotsFromDomain returned %+v", resps)
	}
}
