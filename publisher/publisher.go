package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/finch-technologies/media-publisher/log"
	"github.com/finch-technologies/media-publisher/manifest"
	"github.com/finch-technologies/media-publisher/mediatype"
	"github.com/finch-technologies/media-publisher/metrics"
	"github.com/finch-technologies/media-publisher/notify"
	"github.com/finch-technologies/media-publisher/sentry"
	"github.com/finch-technologies/media-publisher/storage"
	"github.com/finch-technologies/media-publisher/storage/types"
	"github.com/finch-technologies/media-publisher/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName          = "github.com/finch-technologies/media-publisher/publisher"
	metadataContentType = "application/json"
)

type kind string

const (
	kindImage     kind = "image"
	kindAnimation kind = "animation"
	kindMetadata  kind = "metadata"
)

type Request struct {
	Bucket    string
	ImagePath string
	// AnimationPath is optional; empty means the asset has no animation.
	AnimationPath string
	Metadata      []byte
}

type Result struct {
	MetadataURL  string  `json:"metadataUrl"`
	ImageURL     string  `json:"imageUrl"`
	AnimationURL *string `json:"animationUrl,omitempty"`
}

type publishFields struct {
	Bucket string
}

type mediaQuery struct {
	Ext string `url:"ext"`
}

type Publisher struct {
	backend storage.Backend
	config  Config
	tracer  trace.Tracer
}

func New(backend storage.Backend, config ...Config) *Publisher {
	cfg := getConfig(config...)

	return &Publisher{
		backend: backend,
		config:  cfg,
		tracer:  cfg.TracerProvider.Tracer(tracerName),
	}
}

// Publish uploads the image, the animation when one is given, and the patched
// metadata document, in that order. See the package documentation for what
// the returned URLs guarantee.
func (p *Publisher) Publish(ctx context.Context, req Request) (Result, error) {
	ctx, span := p.tracer.Start(ctx, "publisher.Publish", trace.WithAttributes(
		attribute.String("bucket", req.Bucket),
		attribute.Bool("animation", req.AnimationPath != ""),
	))
	defer span.End()

	result, err := p.publish(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	return result, nil
}

func (p *Publisher) publish(ctx context.Context, req Request) (Result, error) {
	if req.Bucket == "" {
		return Result{}, errors.New("bucket is required")
	}
	if req.ImagePath == "" {
		return Result{}, errors.New("image path is required")
	}

	logger := log.New(publishFields{Bucket: req.Bucket})

	imageURL, err := p.uploadMedia(ctx, logger, req.Bucket, req.ImagePath, kindImage)
	if err != nil {
		return Result{}, err
	}

	result := Result{ImageURL: imageURL}

	if req.AnimationPath != "" {
		animationURL, err := p.uploadMedia(ctx, logger, req.Bucket, req.AnimationPath, kindAnimation)
		if err != nil {
			return Result{}, err
		}
		result.AnimationURL = &animationURL
	}

	doc, err := manifest.Patch(string(req.Metadata), result.ImageURL, result.AnimationURL)
	if err != nil {
		return Result{}, err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode metadata document: %w", err)
	}

	result.MetadataURL, err = p.store(ctx, kindMetadata, types.Object{
		Bucket:      req.Bucket,
		Key:         p.config.KeyGenerator(),
		ContentType: metadataContentType,
		Body:        bytes.NewReader(body),
		Size:        int64(len(body)),
	})
	if err != nil {
		return Result{}, err
	}

	if err := p.notify(ctx, logger, req.Bucket, result); err != nil {
		return result, err
	}

	return result, nil
}

// uploadMedia stores the file at path and returns its URL with the file
// extension appended as ?ext=.
func (p *Publisher) uploadMedia(ctx context.Context, logger log.LoggerInterface, bucket, path string, k kind) (string, error) {
	key := p.config.KeyGenerator()

	logger.DebugFields("uploading media", map[string]any{
		"kind": string(k),
		"path": path,
		"key":  key,
	})

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s file: %w", k, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s file: %w", k, err)
	}

	url, err := p.store(ctx, k, types.Object{
		Bucket:      bucket,
		Key:         key,
		ContentType: mediatype.Detect(path),
		Body:        file,
		Size:        info.Size(),
	})
	if err != nil {
		return "", err
	}

	return url + utils.EncodeURLParams(mediaQuery{Ext: utils.Extension(path)}), nil
}

// store applies the failure policy to storage.Store.
func (p *Publisher) store(ctx context.Context, k kind, obj types.Object) (string, error) {
	ctx, span := p.tracer.Start(ctx, "publisher.store", trace.WithAttributes(
		attribute.String("kind", string(k)),
		attribute.String("bucket", obj.Bucket),
		attribute.String("key", obj.Key),
		attribute.String("content_type", obj.ContentType),
	))
	defer span.End()

	start := time.Now()
	url, err := storage.Store(ctx, p.backend, obj)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		sentry.CaptureError(err, map[string]string{
			"kind":   string(k),
			"bucket": obj.Bucket,
			"key":    obj.Key,
		})
	}
	p.config.Metrics.ObserveUpload(ctx, string(k), outcome, time.Since(start))

	if err != nil && p.config.FailurePolicy == Propagate {
		return "", fmt.Errorf("failed to store %s: %w", k, err)
	}

	return url, nil
}

func (p *Publisher) notify(ctx context.Context, logger log.LoggerInterface, bucket string, result Result) error {
	if p.config.Notifier == nil {
		return nil
	}

	err := p.config.Notifier.Notify(ctx, notify.Event{
		Bucket:       bucket,
		MetadataURL:  result.MetadataURL,
		ImageURL:     result.ImageURL,
		AnimationURL: result.AnimationURL,
		PublishedAt:  time.Now().UTC(),
	})
	if err == nil {
		return nil
	}

	logger.ErrorFields("failed to send publish notification", map[string]any{
		"metadataUrl": result.MetadataURL,
		"error":       err.Error(),
	})

	if p.config.FailurePolicy == Propagate {
		return fmt.Errorf("failed to notify: %w", err)
	}

	return nil
}
