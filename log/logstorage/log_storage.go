package logstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/caarlos0/env/v6"
	"github.com/finch-technologies/media-publisher/adapters"
	"github.com/finch-technologies/media-publisher/config/environment"
	"github.com/finch-technologies/media-publisher/log/logstorage/dynamodb"
	"github.com/finch-technologies/media-publisher/log/logstorage/redis"
	"github.com/joho/godotenv"
)

var ErrNoDriver = errors.New("no log storage driver configured")

type Config struct {
	Driver    string `env:"LOG_STORAGE_DRIVER"`
	List      string `env:"LOG_STORAGE_LIST" envDefault:"media-publisher:logs"`
	MaxLength int64  `env:"LOG_STORAGE_MAX_LENGTH" envDefault:"10000"`
	Table     string `env:"LOG_STORAGE_TABLE"`
	Region    string `env:"AWS_REGION" envDefault:"us-east-1"`
	Redis     adapters.RedisConfig
}

var (
	sink    io.Writer
	sinkErr error
	once    sync.Once
)

// Init builds the sink selected by LOG_STORAGE_DRIVER.
func Init() (io.Writer, error) {
	// loaded here because logging is set up before main runs
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse log storage config: %w", err)
	}

	switch cfg.Driver {
	case "redis":
		return redis.New(adapters.GetRedisClient(cfg.Redis), cfg.List, cfg.MaxLength), nil
	case "dynamodb":
		client, err := adapters.GetDynamoClient(context.Background(), cfg.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create dynamodb log sink: %w", err)
		}
		return dynamodb.New(client, TableName(cfg)), nil
	case "":
		return nil, ErrNoDriver
	default:
		// do not log here, this is the logging driver
		return nil, fmt.Errorf("invalid log storage driver %q", cfg.Driver)
	}
}

func GetSink() (io.Writer, error) {
	once.Do(func() {
		sink, sinkErr = Init()
	})

	return sink, sinkErr
}

// TableName returns the configured table or media-publisher.<environment>.logs.
func TableName(cfg Config) string {
	if cfg.Table != "" {
		return cfg.Table
	}

	return fmt.Sprintf("media-publisher.%s.logs", environment.GetEnvironment())
}
