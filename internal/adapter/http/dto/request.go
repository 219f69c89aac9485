package dto

import (
	"time"

	"github.com/millbooks/millbooks/internal/domain"
	"github.com/millbooks/millbooks/internal/usecase"
)

// IngestSnapshotRequest carries a full ledger tree to store as a new
// snapshot version.
type IngestSnapshotRequest struct {
	TakenAt *time.Time                           `json:"taken_at,omitempty"`
	Ledger  map[string]map[string]domain.Record `json:"ledger"`
}

// ToUseCaseInput converts the request to usecase input.
func (r IngestSnapshotRequest) ToUseCaseInput() usecase.IngestInput {
	input := usecase.IngestInput{
		Tree: domain.Snapshot(r.Ledger),
	}
	if r.TakenAt != nil {
		input.TakenAt = *r.TakenAt
	}
	return input
}
