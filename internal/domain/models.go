package domain

import "time"

type ResultID string

// DiagnosticResult is the persisted outcome of one diagnostic run.
// Immutable once saved; the store assigns ID exactly once.
type DiagnosticResult struct {
	ID          ResultID  `json:"id"`
	OwnerID     string    `json:"owner_id"`
	TargetHost  string    `json:"target_host"`
	LatencyMS   *float64  `json:"latency_ms"` // nil when the latency probe produced no value
	DownloadBPS float64   `json:"download_bps"`
	UploadBPS   float64   `json:"upload_bps"`
	CapturedAt  time.Time `json:"captured_at"`
	RawDetail   []byte    `json:"raw_detail,omitempty"` // throughput payload, stored verbatim
}
