package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/finch-technologies/media-publisher/storage/types"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const publicReadHeader = "x-amz-acl"

type ClientMinio interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinioStorage writes to any S3-compatible endpoint through minio-go.
type MinioStorage struct {
	client     ClientMinio
	publicBase string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// PublicBaseURL is the browser-facing origin, e.g. a CDN in front of the
	// endpoint. Defaults to the endpoint itself.
	PublicBaseURL string
}

func New(cfg MinioConfig) (*MinioStorage, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return NewWithClient(client, publicBase(cfg)), nil
}

func NewWithClient(client ClientMinio, publicBase string) *MinioStorage {
	return &MinioStorage{
		client:     client,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

func publicBase(cfg MinioConfig) string {
	if cfg.PublicBaseURL != "" {
		return cfg.PublicBaseURL
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
}

func (m *MinioStorage) PutObject(ctx context.Context, obj types.Object) error {
	_, err := m.client.PutObject(ctx, obj.Bucket, obj.Key, obj.Body, obj.Size, minio.PutObjectOptions{
		ContentType:  obj.ContentType,
		UserMetadata: map[string]string{publicReadHeader: "public-read"},
	})
	if err != nil {
		return fmt.Errorf("failed to put object %q: %w", obj.Key, err)
	}

	return nil
}

// ObjectURL returns the path-style URL of key under the public base.
func (m *MinioStorage) ObjectURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", m.publicBase, bucket, key)
}
