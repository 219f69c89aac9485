package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/millbooks/millbooks/internal/adapter/http/dto"
	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/usecase"
)

// SnapshotService defines the behavior needed by SnapshotHandler.
type SnapshotService interface {
	Ingest(ctx context.Context, input usecase.IngestInput) (domain.SnapshotInfo, error)
	Latest(ctx context.Context) (domain.SnapshotInfo, error)
	ListVersions(ctx context.Context, limit int) ([]domain.SnapshotInfo, error)
}

// SnapshotHandler handles snapshot HTTP requests.
type SnapshotHandler struct {
	snapshotUC SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotUC SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotUC: snapshotUC}
}

// Ingest stores a full ledger tree as a new snapshot version.
func (h *SnapshotHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req dto.IngestSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	info, err := h.snapshotUC.Ingest(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SnapshotFromDomain(info))
}

// Latest returns the most recent snapshot version.
func (h *SnapshotHandler) Latest(w http.ResponseWriter, r *http.Request) {
	info, err := h.snapshotUC.Latest(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, "no snapshot stored", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get latest snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotFromDomain(info))
}

// List lists stored snapshot versions.
func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)

	infos, err := h.snapshotUC.ListVersions(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list snapshots", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotsFromDomain(infos))
}
