package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/usecase"
)

// RollupResponse is one {total, paid, pending} node in API responses.
type RollupResponse struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

// RollupFromDomain converts a domain rollup to a response node.
func RollupFromDomain(r domain.Rollup) RollupResponse {
	return RollupResponse{
		Total:   r.Total,
		Paid:    r.Paid,
		Pending: r.Pending,
	}
}

// RangeResponse echoes the resolved date range back to the consumer.
type RangeResponse struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// ReportResponse is the full rollup in API responses.
type ReportResponse struct {
	SnapshotVersion string                    `json:"snapshot_version,omitempty"`
	SnapshotTakenAt *time.Time                `json:"snapshot_taken_at,omitempty"`
	Range           RangeResponse             `json:"range"`
	Categories      map[string]RollupResponse `json:"categories"`
	Domains         map[string]RollupResponse `json:"domains"`
	Revenue         RollupResponse            `json:"revenue"`
}

// ReportFromResult converts a usecase rollup result to a response.
func ReportFromResult(result *usecase.RollupResult, r domain.DateRange) *ReportResponse {
	resp := &ReportResponse{
		SnapshotVersion: result.Version,
		Range:           RangeResponse{From: r.From, To: r.To},
		Categories:      make(map[string]RollupResponse, len(result.Report.Categories)),
		Domains:         make(map[string]RollupResponse, len(result.Report.Domains)),
		Revenue:         RollupFromDomain(result.Report.Revenue),
	}

	if !result.TakenAt.IsZero() {
		takenAt := result.TakenAt
		resp.SnapshotTakenAt = &takenAt
	}

	for name, node := range result.Report.Categories {
		resp.Categories[string(name)] = RollupFromDomain(node)
	}
	for name, node := range result.Report.Domains {
		resp.Domains[string(name)] = RollupFromDomain(node)
	}

	return resp
}

// CategoryResponse describes one entry of the category table.
type CategoryResponse struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// CategoriesFromDomain converts the descriptor table to responses.
func CategoriesFromDomain(descs []domain.CategoryDescriptor) []CategoryResponse {
	result := make([]CategoryResponse, len(descs))
	for i, d := range descs {
		result[i] = CategoryResponse{
			Name:   string(d.Name),
			Domain: string(d.Domain),
		}
	}
	return result
}

// SnapshotResponse identifies one stored snapshot in API responses.
type SnapshotResponse struct {
	Version string    `json:"version"`
	TakenAt time.Time `json:"taken_at"`
}

// SnapshotFromDomain converts snapshot info to a response.
func SnapshotFromDomain(info domain.SnapshotInfo) SnapshotResponse {
	return SnapshotResponse{
		Version: info.Version,
		TakenAt: info.TakenAt,
	}
}

// SnapshotsFromDomain converts snapshot infos to responses.
func SnapshotsFromDomain(infos []domain.SnapshotInfo) []SnapshotResponse {
	result := make([]SnapshotResponse, len(infos))
	for i, info := range infos {
		result[i] = SnapshotFromDomain(info)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
