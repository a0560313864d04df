package storage

import (
	"context"
	"fmt"

	"github.com/finch-technologies/media-publisher/log"
	"github.com/finch-technologies/media-publisher/storage/filesystem"
	"github.com/finch-technologies/media-publisher/storage/minio"
	"github.com/finch-technologies/media-publisher/storage/s3"
	"github.com/finch-technologies/media-publisher/storage/types"
)

// Backend is the object store a publisher writes to. Every object is written
// publicly readable so that ObjectURL can be handed out without signing.
type Backend interface {
	PutObject(ctx context.Context, obj types.Object) error
	ObjectURL(bucket, key string) string
}

type StorageType string

const (
	StorageS3    StorageType = "s3"
	StorageMinio StorageType = "minio"
	StorageLocal StorageType = "local"
)

type StorageConfig struct {
	Type          string `env:"TYPE" envDefault:"s3"`
	Bucket        string `env:"BUCKET"`
	Region        string `env:"REGION" envDefault:"us-east-1"`
	Endpoint      string `env:"ENDPOINT"`
	AccessKey     string `env:"ACCESS_KEY"`
	SecretKey     string `env:"SECRET_KEY"`
	UseSSL        bool   `env:"USE_SSL" envDefault:"true"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	BasePath      string `env:"BASE_PATH"`
}

// Init builds the backend selected by cfg.Type.
func Init(ctx context.Context, cfg StorageConfig) (Backend, error) {
	switch StorageType(cfg.Type) {
	case StorageS3, "":
		log.Debugf("Using S3 storage in %s", cfg.Region)
		backend, err := s3.New(ctx, s3.S3Config{
			Region:   cfg.Region,
			Endpoint: cfg.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 storage: %w", err)
		}
		return backend, nil
	case StorageMinio:
		log.Debugf("Using minio storage: %s", cfg.Endpoint)
		backend, err := minio.New(minio.MinioConfig{
			Endpoint:      cfg.Endpoint,
			AccessKey:     cfg.AccessKey,
			SecretKey:     cfg.SecretKey,
			UseSSL:        cfg.UseSSL,
			PublicBaseURL: cfg.PublicBaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio storage: %w", err)
		}
		return backend, nil
	case StorageLocal:
		log.Debugf("Using local storage: %s", cfg.BasePath)
		var options []filesystem.LocalStorageOptions
		if cfg.BasePath != "" {
			options = append(options, filesystem.LocalStorageOptions{BasePath: cfg.BasePath})
		}
		backend, err := filesystem.Init(options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create local storage: %w", err)
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
