package probe

import (
	"context"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPingCount   = 4
	DefaultPingTimeout = 10 * time.Second
)

// Runner executes an external command and returns its combined output.
// Tests substitute a fake so no real process is spawned.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PingProbe measures mean RTT by running the system ping utility once per
// call. A failed attempt is reported immediately; retrying is the caller's
// decision.
type PingProbe struct {
	Run    Runner
	Logger *zap.Logger
}

func NewPingProbe(log *zap.Logger) *PingProbe {
	return &PingProbe{Run: execRunner{}, Logger: log}
}

var _ LatencyProber = (*PingProbe)(nil)

func (p *PingProbe) Measure(ctx context.Context, target string, count int, timeout time.Duration) (float64, bool) {
	if count <= 0 {
		count = DefaultPingCount
	}
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}
	out, err := p.Run.Output(ctx, "ping", countFlag, strconv.Itoa(count), target)
	if err != nil {
		p.Logger.Warn("ping_failed",
			zap.String("target", target),
			zap.Error(err),
		)
		return 0, false
	}

	ms, ok := ParseMeanLatency(string(out))
	if !ok {
		p.Logger.Warn("ping_unparsable",
			zap.String("target", target),
		)
		return 0, false
	}
	return ms, true
}
