package memory

import (
	"context"
	"testing"
	"time"

	"github.com/hamed0406/netdiag/internal/domain"
)

func TestMemoryStore_SaveAssignsID(t *testing.T) {
	ctx := context.Background()
	s := New()

	lat := 12.5
	r := &domain.DiagnosticResult{
		OwnerID:     "alice",
		TargetHost:  "example.com",
		LatencyMS:   &lat,
		DownloadBPS: 1e8,
		UploadBPS:   2e7,
		CapturedAt:  time.Now().UTC(),
		RawDetail:   []byte(`{"k":"v"}`),
	}
	id, err := s.Save(ctx, r)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatalf("expected id to be assigned")
	}
}

func TestMemoryStore_ListByOwner_OrderAndScope(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Now().UTC()
	for i, owner := range []string{"alice", "alice", "bob"} {
		r := &domain.DiagnosticResult{
			OwnerID:    owner,
			TargetHost: "example.com",
			CapturedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := s.Save(ctx, r); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := s.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 results for alice, got %d", len(got))
	}
	for _, r := range got {
		if r.OwnerID != "alice" {
			t.Fatalf("foreign result leaked: %+v", r)
		}
	}
	if !got[0].CapturedAt.After(got[1].CapturedAt) {
		t.Fatalf("want most-recent-first, got %v then %v", got[0].CapturedAt, got[1].CapturedAt)
	}

	empty, err := s.ListByOwner(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByOwner(nobody): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("want empty slice, got %d", len(empty))
	}
}

func TestMemoryStore_GetByID_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.Save(ctx, &domain.DiagnosticResult{
		OwnerID:    "alice",
		TargetHost: "example.com",
		CapturedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, found, _ := s.GetByID(ctx, "bob", id); found {
		t.Fatalf("cross-owner lookup must not succeed")
	}
	r, found, err := s.GetByID(ctx, "alice", id)
	if err != nil || !found {
		t.Fatalf("GetByID: found=%v err=%v", found, err)
	}
	if r.ID != id || r.OwnerID != "alice" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestMemoryStore_ReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New()

	lat := 9.9
	id, _ := s.Save(ctx, &domain.DiagnosticResult{
		OwnerID:    "alice",
		TargetHost: "example.com",
		LatencyMS:  &lat,
		CapturedAt: time.Now().UTC(),
		RawDetail:  []byte("payload"),
	})

	first, _, _ := s.GetByID(ctx, "alice", id)
	// mutate the returned copy; the store must not observe it
	*first.LatencyMS = 1000
	first.RawDetail[0] = 'X'

	second, _, _ := s.GetByID(ctx, "alice", id)
	if *second.LatencyMS != 9.9 {
		t.Fatalf("read mutated stored latency: %v", *second.LatencyMS)
	}
	if string(second.RawDetail) != "payload" {
		t.Fatalf("read mutated stored raw detail: %q", second.RawDetail)
	}
}
