package diag

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/netdiag/internal/domain"
	"github.com/hamed0406/netdiag/internal/probe"
	"github.com/hamed0406/netdiag/internal/repo"
)

// Orchestrator runs both probes for a target, merges their outputs into one
// DiagnosticResult and persists it. It is the single place where probe
// outcomes are classified into the error taxonomy.
type Orchestrator struct {
	Logger     *zap.Logger
	Latency    probe.LatencyProber
	Throughput probe.ThroughputProber
	Results    repo.ResultStore

	PingCount         int
	PingTimeout       time.Duration
	ThroughputTimeout time.Duration
}

func NewOrchestrator(
	log *zap.Logger,
	lat probe.LatencyProber,
	thr probe.ThroughputProber,
	results repo.ResultStore,
) *Orchestrator {
	return &Orchestrator{
		Logger:            log,
		Latency:           lat,
		Throughput:        thr,
		Results:           results,
		PingCount:         probe.DefaultPingCount,
		PingTimeout:       probe.DefaultPingTimeout,
		ThroughputTimeout: probe.DefaultSpeedtestTimeout,
	}
}

// RunDiagnostic executes one diagnostic run for ownerID against target.
//
// Throughput anchors the result: if it fails the whole run fails and nothing
// is saved. A failed latency probe alone is tolerated; the record is saved
// with an absent latency value.
func (o *Orchestrator) RunDiagnostic(ctx context.Context, ownerID, target string) (*domain.DiagnosticResult, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, domain.E(domain.KindInvalidInput, "target host must not be empty", nil)
	}
	if ownerID == "" {
		return nil, domain.E(domain.KindInvalidInput, "owner id must not be empty", nil)
	}

	var (
		wg         sync.WaitGroup
		latencyMS  float64
		latencyOK  bool
		downBPS    float64
		upBPS      float64
		raw        []byte
		thrErr     error
	)

	// The probes are independent; run them in parallel and wait for both
	// before deciding the failure policy.
	wg.Add(2)
	go func() {
		defer wg.Done()
		latencyMS, latencyOK = o.Latency.Measure(ctx, target, o.PingCount, o.PingTimeout)
	}()
	go func() {
		defer wg.Done()
		downBPS, upBPS, raw, thrErr = o.Throughput.Measure(ctx, o.ThroughputTimeout)
	}()
	wg.Wait()

	if thrErr != nil {
		kind := domain.KindProbeFailure
		if errors.Is(thrErr, context.DeadlineExceeded) {
			kind = domain.KindProbeTimeout
		}
		o.Logger.Warn("throughput_probe_failed",
			zap.String("owner_id", ownerID),
			zap.String("target", target),
			zap.Error(thrErr),
		)
		return nil, domain.E(kind, "throughput probe failed", thrErr)
	}

	r := &domain.DiagnosticResult{
		OwnerID:     ownerID,
		TargetHost:  target,
		DownloadBPS: downBPS,
		UploadBPS:   upBPS,
		CapturedAt:  time.Now().UTC(),
		RawDetail:   raw,
	}
	if latencyOK {
		r.LatencyMS = &latencyMS
	} else {
		o.Logger.Warn("latency_probe_failed",
			zap.String("owner_id", ownerID),
			zap.String("target", target),
		)
	}

	id, err := o.Results.Save(ctx, r)
	if err != nil {
		return nil, domain.E(domain.KindStorageError, "could not persist result", err)
	}
	r.ID = id

	o.Logger.Info("diagnostic_saved",
		zap.String("id", string(id)),
		zap.String("owner_id", ownerID),
		zap.String("target", target),
		zap.Bool("latency_present", latencyOK),
		zap.Float64("download_bps", downBPS),
		zap.Float64("upload_bps", upBPS),
	)
	return r, nil
}
