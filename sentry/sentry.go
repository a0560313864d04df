package sentry

import (
	"time"

	"github.com/finch-technologies/media-publisher/config/environment"
	"github.com/finch-technologies/media-publisher/utils"
	"github.com/getsentry/sentry-go"
)

type Config struct {
	DSN         string  `env:"DSN"`
	Environment string  `env:"ENVIRONMENT"`
	SampleRate  float64 `env:"SAMPLE_RATE" envDefault:"1.0"`
}

// Init enables error reporting. Without a DSN reporting stays disabled and
// CaptureError is a no-op.
func Init(cfg Config) error {
	if cfg.DSN == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: utils.StringOrDefault(cfg.Environment, string(environment.GetEnvironment())),
		SampleRate:  cfg.SampleRate,
	})
}

func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

// Flush waits for queued events; call before the process exits.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
