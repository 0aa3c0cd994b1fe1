package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hamed0406/netdiag/internal/domain"
	"github.com/hamed0406/netdiag/internal/repo"
)

var _ repo.ResultStore = (*Store)(nil)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Save(ctx context.Context, r *domain.DiagnosticResult) (domain.ResultID, error) {
	id := domain.ResultID(uuid.NewString())
	_, err := s.pool.Exec(ctx,
		`INSERT INTO diagnostics
		   (id, owner_id, target_host, latency_ms, download_bps, upload_bps, captured_at, raw_detail)
		 VALUES
		   ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(id), r.OwnerID, r.TargetHost, r.LatencyMS, r.DownloadBPS, r.UploadBPS, r.CapturedAt, r.RawDetail,
	)
	if err != nil {
		return "", fmt.Errorf("insert diagnostic: %w", err)
	}
	return id, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]domain.DiagnosticResult, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner_id, target_host, latency_ms, download_bps, upload_bps, captured_at, raw_detail
		   FROM diagnostics
		  WHERE owner_id = $1
		  ORDER BY captured_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list diagnostics: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DiagnosticResult, 0, 16)
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan diagnostic: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, ownerID string, id domain.ResultID) (*domain.DiagnosticResult, bool, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, owner_id, target_host, latency_ms, download_bps, upload_bps, captured_at, raw_detail
		   FROM diagnostics
		  WHERE id = $1 AND owner_id = $2`, string(id), ownerID)
	r, err := scanResult(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get diagnostic: %w", err)
	}
	return &r, true, nil
}

func scanResult(row pgx.Row) (domain.DiagnosticResult, error) {
	var (
		r       domain.DiagnosticResult
		id      string
		latency *float64
	)
	if err := row.Scan(&id, &r.OwnerID, &r.TargetHost, &latency,
		&r.DownloadBPS, &r.UploadBPS, &r.CapturedAt, &r.RawDetail); err != nil {
		return r, err
	}
	r.ID = domain.ResultID(id)
	r.LatencyMS = latency
	return r, nil
}
