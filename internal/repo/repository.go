package repo

import (
	"context"

	"github.com/hamed0406/netdiag/internal/domain"
)

// ResultStore is the port every storage adapter implements.
//
// Save assigns the id (exactly once) and stores all fields atomically.
// ListByOwner returns the owner's results ordered by captured_at descending;
// an owner with no results gets an empty slice, not an error.
// GetByID returns found=false for ids that do not exist or belong to another
// owner — owner scoping here is the sole data-layer authorization boundary.
type ResultStore interface {
	Save(ctx context.Context, r *domain.DiagnosticResult) (domain.ResultID, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.DiagnosticResult, error)
	GetByID(ctx context.Context, ownerID string, id domain.ResultID) (*domain.DiagnosticResult, bool, error)
}
