package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/hamed0406/netdiag/internal/domain"
	"github.com/hamed0406/netdiag/internal/repo"
)

var _ repo.ResultStore = (*Store)(nil)

// Store keeps each result as a JSON blob under result:<id> and indexes ids in
// a per-owner sorted set scored by captured_at, so ListByOwner reads newest
// first without scanning.
type Store struct {
	client *redis.Client
}

func New(ctx context.Context, addr string) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Store{client: rdb}, nil
}

func (s *Store) Close() error { return s.client.Close() }

func resultKey(id domain.ResultID) string { return fmt.Sprintf("result:%s", id) }
func ownerKey(ownerID string) string      { return fmt.Sprintf("owner:%s:results", ownerID) }

func (s *Store) Save(ctx context.Context, r *domain.DiagnosticResult) (domain.ResultID, error) {
	id := domain.ResultID(uuid.NewString())
	cp := *r
	cp.ID = id
	data, err := json.Marshal(&cp)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	// Both writes in one transaction so readers never see a dangling index.
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, resultKey(id), data, 0)
	pipe.ZAdd(ctx, ownerKey(cp.OwnerID), &redis.Z{
		Score:  float64(cp.CapturedAt.UnixNano()),
		Member: string(id),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("store result: %w", err)
	}
	return id, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]domain.DiagnosticResult, error) {
	ids, err := s.client.ZRevRange(ctx, ownerKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]domain.DiagnosticResult, 0, len(ids))
	for _, id := range ids {
		data, err := s.client.Get(ctx, resultKey(domain.ResultID(id))).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetch result %s: %w", id, err)
		}
		var r domain.DiagnosticResult
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("decode result %s: %w", id, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, ownerID string, id domain.ResultID) (*domain.DiagnosticResult, bool, error) {
	data, err := s.client.Get(ctx, resultKey(id)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetch result: %w", err)
	}
	var r domain.DiagnosticResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, fmt.Errorf("decode result: %w", err)
	}
	if r.OwnerID != ownerID {
		return nil, false, nil
	}
	return &r, true, nil
}
