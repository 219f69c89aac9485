package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/millbooks/millbooks/internal/adapter/http/handler"
	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /api/v1/reports/rollup",
		"GET /api/v1/reports/rollup/{category}",
		"GET /api/v1/categories",
		"POST /api/v1/snapshots/",
		"GET /api/v1/snapshots/",
		"GET /api/v1/snapshots/latest",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func TestNewRouter_CategoriesListsFullTable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var categories []struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(categories) != len(domain.Descriptors()) {
		t.Fatalf("expected %d categories, got %d", len(domain.Descriptors()), len(categories))
	}
}

func newRouterConfig() RouterConfig {
	return RouterConfig{
		ReportHandler:   handler.NewReportHandler(stubReportService{}),
		SnapshotHandler: handler.NewSnapshotHandler(stubSnapshotService{}),
		CategoryHandler: handler.NewCategoryHandler(),
		HealthHandler:   handler.NewHealthHandler(nil, nil),
	}
}

type stubReportService struct{}

func (stubReportService) Rollup(ctx context.Context, input usecase.RollupInput) (*usecase.RollupResult, error) {
	return &usecase.RollupResult{
		Report: domain.Report{
			Categories: map[domain.Category]domain.Rollup{},
			Domains:    map[domain.Domain]domain.Rollup{},
		},
	}, nil
}

func (stubReportService) CategoryRollup(ctx context.Context, name domain.Category, input usecase.RollupInput) (domain.Rollup, error) {
	return domain.Rollup{}, nil
}

type stubSnapshotService struct{}

func (stubSnapshotService) Ingest(ctx context.Context, input usecase.IngestInput) (domain.SnapshotInfo, error) {
	return domain.SnapshotInfo{Version: "01TEST"}, nil
}

func (stubSnapshotService) Latest(ctx context.Context) (domain.SnapshotInfo, error) {
	return domain.SnapshotInfo{Version: "01TEST"}, nil
}

func (stubSnapshotService) ListVersions(ctx context.Context, limit int) ([]domain.SnapshotInfo, error) {
	return []domain.SnapshotInfo{}, nil
}
