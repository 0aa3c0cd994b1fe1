package probe

import (
	"context"
	"time"
)

// LatencyProber measures mean round-trip latency to a target host.
// ok=false means no value could be measured; callers must not substitute zero.
type LatencyProber interface {
	Measure(ctx context.Context, target string, count int, timeout time.Duration) (latencyMS float64, ok bool)
}

// ThroughputProber measures download/upload throughput against a
// best-available endpoint. raw is the facility's full result payload,
// serialized for opaque storage.
type ThroughputProber interface {
	Measure(ctx context.Context, timeout time.Duration) (downloadBPS, uploadBPS float64, raw []byte, err error)
}
