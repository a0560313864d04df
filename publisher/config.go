package publisher

import (
	"fmt"

	"github.com/finch-technologies/media-publisher/metrics"
	"github.com/finch-technologies/media-publisher/notify"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type FailurePolicy string

const (
	BestEffort FailurePolicy = "best-effort"
	Propagate  FailurePolicy = "propagate"
)

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case BestEffort, "":
		return BestEffort, nil
	case Propagate:
		return Propagate, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q", s)
	}
}

type Config struct {
	FailurePolicy FailurePolicy
	// KeyGenerator returns the object key for each upload. Keys must not repeat.
	KeyGenerator   func() string
	Metrics        metrics.Recorder
	Notifier       notify.Notifier
	TracerProvider trace.TracerProvider
}

func getConfig(config ...Config) Config {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.FailurePolicy == "" {
		cfg.FailurePolicy = BestEffort
	}
	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = uuid.NewString
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NoopRecorder{}
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}

	return cfg
}
