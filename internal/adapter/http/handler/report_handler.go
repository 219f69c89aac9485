package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/millbooks/millbooks/internal/adapter/http/dto"
	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Rollup(ctx context.Context, input usecase.RollupInput) (*usecase.RollupResult, error)
	CategoryRollup(ctx context.Context, name domain.Category, input usecase.RollupInput) (domain.Rollup, error)
}

// ReportHandler handles rollup report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
	now      func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		now:      time.Now,
	}
}

// Rollup computes the full rollup for the selected range.
func (h *ReportHandler) Rollup(w http.ResponseWriter, r *http.Request) {
	input := usecase.RollupInput{
		Version: r.URL.Query().Get("version"),
		Range:   h.parseRange(r),
	}

	result, err := h.reportUC.Rollup(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute rollup", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportFromResult(result, input.Range))
}

// CategoryRollup computes the rollup for a single category.
func (h *ReportHandler) CategoryRollup(w http.ResponseWriter, r *http.Request) {
	name := domain.Category(chi.URLParam(r, "category"))

	input := usecase.RollupInput{
		Version: r.URL.Query().Get("version"),
		Range:   h.parseRange(r),
	}

	node, err := h.reportUC.CategoryRollup(r.Context(), name, input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute category rollup", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RollupFromDomain(node))
}

// parseRange resolves the date range from the request: an explicit from/to
// pair wins, otherwise a preset is expanded relative to now. A request with
// neither, or with only one bound, yields an incomplete range, which the
// engine answers with all-zero rollups.
func (h *ReportHandler) parseRange(r *http.Request) domain.DateRange {
	from := parseTimeQuery(r, "from")
	to := parseTimeQuery(r, "to")
	if from != nil || to != nil {
		return domain.DateRange{From: from, To: to}
	}

	if preset := r.URL.Query().Get("preset"); preset != "" {
		return presetRange(preset, h.now().UTC())
	}

	return domain.DateRange{}
}

// presetRange expands a user-chosen preset into a concrete closed interval
// ending now. Unknown presets yield an incomplete range.
func presetRange(preset string, now time.Time) domain.DateRange {
	switch preset {
	case "day":
		return domain.NewDateRange(now.AddDate(0, 0, -1), now)
	case "week":
		return domain.NewDateRange(now.AddDate(0, 0, -7), now)
	case "month":
		return domain.NewDateRange(now.AddDate(0, -1, 0), now)
	case "year":
		return domain.NewDateRange(now.AddDate(-1, 0, 0), now)
	case "all":
		return domain.NewDateRange(time.Unix(0, 0).UTC(), now)
	default:
		return domain.DateRange{}
	}
}
