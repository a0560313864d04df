package metrics

import (
	"context"
	"time"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Recorder receives one observation per storage call.
type Recorder interface {
	ObserveUpload(ctx context.Context, kind string, outcome Outcome, duration time.Duration)
}

type NoopRecorder struct{}

func (NoopRecorder) ObserveUpload(ctx context.Context, kind string, outcome Outcome, duration time.Duration) {
}
