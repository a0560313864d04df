package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/finch-technologies/media-publisher/config"
	"github.com/finch-technologies/media-publisher/log"
	"github.com/finch-technologies/media-publisher/metrics"
	"github.com/finch-technologies/media-publisher/notify"
	redisnotify "github.com/finch-technologies/media-publisher/notify/redis"
	"github.com/finch-technologies/media-publisher/notify/sqs"
	"github.com/finch-technologies/media-publisher/publisher"
	"github.com/finch-technologies/media-publisher/sentry"
	"github.com/finch-technologies/media-publisher/storage"
	"github.com/finch-technologies/media-publisher/utils"
	"github.com/spf13/cobra"
)

const sentryFlushTimeout = 2 * time.Second

type options struct {
	bucket        string
	image         string
	animation     string
	metadata      string
	failurePolicy string
	timeout       time.Duration
	envFile       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "publish-media",
		Short: "Upload an asset's image, animation and metadata to object storage",
		Long: `Uploads the image, the optional animation and the metadata document of an
asset as public objects and prints the resulting URLs as JSON.

Storage, notification and reporting are configured through the environment
(STORAGE_*, NOTIFY_SQS_*, SENTRY_*, METRICS_*), optionally loaded from a .env file.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries only the result document
			log.SetOutput(cmd.ErrOrStderr())

			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.bucket, "bucket", "", "destination bucket (default $STORAGE_BUCKET)")
	flags.StringVar(&opts.image, "image", "", "path of the image file")
	flags.StringVar(&opts.animation, "animation", "", "path of the animation file")
	flags.StringVar(&opts.metadata, "metadata", "", "path of the metadata JSON document")
	flags.StringVar(&opts.failurePolicy, "failure-policy", "", "best-effort or propagate (default $PUBLISH_FAILURE_POLICY)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "abort the publication after this long (0 disables)")
	flags.StringVar(&opts.envFile, "env-file", "", "load configuration from this file instead of .env")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("metadata")

	return cmd
}

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	policy, err := publisher.ParseFailurePolicy(utils.StringOrDefault(opts.failurePolicy, cfg.FailurePolicy))
	if err != nil {
		return err
	}

	bucket := utils.StringOrDefault(opts.bucket, cfg.Storage.Bucket)
	if bucket == "" {
		return errors.New("no bucket given, set --bucket or STORAGE_BUCKET")
	}

	metadata, err := os.ReadFile(opts.metadata)
	if err != nil {
		return fmt.Errorf("failed to read metadata document: %w", err)
	}

	if err := sentry.Init(cfg.Sentry); err != nil {
		log.Errorf("failed to initialise sentry: %v", err)
	}
	defer sentry.Flush(sentryFlushTimeout)

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	backend, err := storage.Init(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	collector := metrics.NewPrometheusCollector(cfg.Metrics.Namespace)

	pubConfig := publisher.Config{
		FailurePolicy: policy,
		Metrics:       collector,
	}

	notifier, err := newNotifier(ctx, cfg)
	if err != nil {
		return err
	}
	pubConfig.Notifier = notifier

	result, err := publisher.New(backend, pubConfig).Publish(ctx, publisher.Request{
		Bucket:        bucket,
		ImagePath:     opts.image,
		AnimationPath: opts.animation,
		Metadata:      metadata,
	})

	if cfg.Metrics.Textfile != "" {
		if err := collector.WriteToTextfile(cfg.Metrics.Textfile); err != nil {
			log.Errorf("failed to write metrics: %v", err)
		}
	}

	if err != nil {
		log.Errorf("publish failed: %v", err)
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(result)
}

// newNotifier returns the notifiers enabled in cfg, or nil when none is.
func newNotifier(ctx context.Context, cfg *config.Config) (notify.Notifier, error) {
	var notifiers []notify.Notifier

	if cfg.Notify.QueueURL != "" {
		n, err := sqs.New(ctx, cfg.Notify)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	if cfg.NotifyRedis.Channel != "" {
		n, err := redisnotify.New(cfg.NotifyRedis)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	switch len(notifiers) {
	case 0:
		return nil, nil
	case 1:
		return notifiers[0], nil
	default:
		return notify.Multi(notifiers...), nil
	}
}
