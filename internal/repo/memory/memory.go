package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hamed0406/netdiag/internal/domain"
)

// Store keeps results in memory. Used in tests and as the dev default when no
// DATABASE_URL / REDIS_ADDR is configured.
type Store struct {
	mu      sync.RWMutex
	results map[domain.ResultID]*domain.DiagnosticResult
	byOwner map[string][]domain.ResultID
}

func New() *Store {
	return &Store{
		results: make(map[domain.ResultID]*domain.DiagnosticResult),
		byOwner: make(map[string][]domain.ResultID),
	}
}

func (s *Store) Save(ctx context.Context, r *domain.DiagnosticResult) (domain.ResultID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.ResultID(uuid.NewString())
	cp := *r
	cp.ID = id
	cp.RawDetail = append([]byte(nil), r.RawDetail...)
	if r.LatencyMS != nil {
		v := *r.LatencyMS
		cp.LatencyMS = &v
	}
	s.results[id] = &cp
	s.byOwner[cp.OwnerID] = append(s.byOwner[cp.OwnerID], id)
	return id, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]domain.DiagnosticResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byOwner[ownerID]
	out := make([]domain.DiagnosticResult, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyResult(s.results[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, ownerID string, id domain.ResultID) (*domain.DiagnosticResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.results[id]
	if !ok || r.OwnerID != ownerID {
		return nil, false, nil
	}
	cp := copyResult(r)
	return &cp, true, nil
}

// copyResult returns a deep copy so readers can never mutate stored records.
func copyResult(r *domain.DiagnosticResult) domain.DiagnosticResult {
	cp := *r
	cp.RawDetail = append([]byte(nil), r.RawDetail...)
	if r.LatencyMS != nil {
		v := *r.LatencyMS
		cp.LatencyMS = &v
	}
	return cp
}
