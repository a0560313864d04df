// Package config loads publisher settings from the environment and an optional .env file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	redisnotify "github.com/finch-technologies/media-publisher/notify/redis"
	"github.com/finch-technologies/media-publisher/notify/sqs"
	"github.com/finch-technologies/media-publisher/sentry"
	"github.com/finch-technologies/media-publisher/storage"
	"github.com/joho/godotenv"
)

type Config struct {
	Storage       storage.StorageConfig   `envPrefix:"STORAGE_"`
	FailurePolicy string                  `env:"PUBLISH_FAILURE_POLICY" envDefault:"best-effort"`
	Notify        sqs.SQSConfig           `envPrefix:"NOTIFY_SQS_"`
	NotifyRedis   redisnotify.RedisConfig `envPrefix:"NOTIFY_"`
	Sentry        sentry.Config           `envPrefix:"SENTRY_"`
	Metrics       MetricsConfig           `envPrefix:"METRICS_"`
}

type MetricsConfig struct {
	Namespace string `env:"NAMESPACE" envDefault:"media_publisher"`
	// Textfile, when set, receives the metrics of the run in textfile-collector format.
	Textfile string `env:"TEXTFILE"`
}

// Load reads .env files (when present) and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
