package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/showwin/speedtest-go/speedtest"
	"go.uber.org/zap"
)

const DefaultSpeedtestTimeout = 120 * time.Second

// ServerLister is the slice of the speedtest client the probe needs for
// server discovery. Tests substitute a fake; the context bounds the fetch so
// a stalled speedtest.net exchange cannot outlive the probe deadline.
type ServerLister interface {
	FetchServerListContext(ctx context.Context) (speedtest.Servers, error)
}

var _ ServerLister = (*speedtest.Speedtest)(nil)

// SpeedtestProbe measures throughput against the best available speedtest.net
// endpoint. Server selection, download and upload are one success/failure
// unit; partial numbers are never returned.
type SpeedtestProbe struct {
	Client ServerLister
	Logger *zap.Logger
}

func NewSpeedtestProbe(log *zap.Logger) *SpeedtestProbe {
	return &SpeedtestProbe{Client: speedtest.New(), Logger: log}
}

var _ ThroughputProber = (*SpeedtestProbe)(nil)

func (p *SpeedtestProbe) Measure(ctx context.Context, timeout time.Duration) (float64, float64, []byte, error) {
	if timeout <= 0 {
		timeout = DefaultSpeedtestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	servers, err := p.Client.FetchServerListContext(ctx)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("fetch servers: %w", err)
	}
	targets, err := servers.FindServer(nil)
	if err != nil || len(targets) == 0 {
		return 0, 0, nil, fmt.Errorf("no measurement server available: %w", err)
	}
	srv := targets[0]
	p.Logger.Info("speedtest_server",
		zap.String("host", srv.Host),
		zap.String("name", srv.Name),
	)

	// Baseline latency from the same exchange as the throughput tests.
	if err := srv.PingTestContext(ctx, nil); err != nil {
		return 0, 0, nil, fmt.Errorf("ping test: %w", err)
	}
	if err := srv.DownloadTestContext(ctx); err != nil {
		return 0, 0, nil, fmt.Errorf("download test: %w", err)
	}
	if err := srv.UploadTestContext(ctx); err != nil {
		return 0, 0, nil, fmt.Errorf("upload test: %w", err)
	}

	raw, err := json.Marshal(srv)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("encode result: %w", err)
	}

	down := srv.DLSpeed.Mbps() * 1e6
	up := srv.ULSpeed.Mbps() * 1e6
	p.Logger.Info("speedtest_done",
		zap.Float64("download_bps", down),
		zap.Float64("upload_bps", up),
		zap.Duration("latency", srv.Latency),
	)
	return down, up, raw, nil
}
