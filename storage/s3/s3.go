package s3

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/finch-technologies/media-publisher/adapters"
	"github.com/finch-technologies/media-publisher/storage/types"
	"github.com/finch-technologies/media-publisher/utils"
)

type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Storage struct {
	Client PutObjectAPI
	Region string
}

type S3Config struct {
	Region string
	// Endpoint overrides the AWS endpoint, e.g. for localstack. Path-style
	// addressing is used when set.
	Endpoint string
}

func getConfig(config ...S3Config) S3Config {
	cfg := S3Config{}
	if len(config) > 0 {
		cfg = config[0]
	}

	cfg.Region = utils.StringOrDefault(cfg.Region, utils.StringOrDefault(os.Getenv("S3_REGION"), adapters.DefaultRegion))

	return cfg
}

func New(ctx context.Context, config ...S3Config) (*S3Storage, error) {
	cfg := getConfig(config...)

	awsCfg, err := adapters.LoadAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}

	var optFns []func(*s3.Options)

	if os.Getenv("S3_DEBUG") == "true" {
		optFns = append(optFns, func(o *s3.Options) {
			o.ClientLogMode = aws.LogSigning | aws.LogRequest | aws.LogResponseWithBody
		})
	}

	if cfg.Endpoint != "" {
		optFns = append(optFns, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return NewWithClient(s3.NewFromConfig(awsCfg, optFns...), cfg.Region), nil
}

func NewWithClient(client PutObjectAPI, region string) *S3Storage {
	return &S3Storage{
		Client: client,
		Region: region,
	}
}

// PutObject uploads obj with a public-read ACL.
func (s *S3Storage) PutObject(ctx context.Context, obj types.Object) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(obj.Bucket),
		Key:    aws.String(obj.Key),
		Body:   obj.Body,
		ACL:    s3types.ObjectCannedACLPublicRead,
	}

	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}

	if obj.Size >= 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}

	_, err := s.Client.PutObject(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("failed to upload %s to S3 (%s): %w", obj.Key, apiErr.ErrorCode(), err)
		}
		return fmt.Errorf("failed to upload %s to S3: %w", obj.Key, err)
	}

	return nil
}

// ObjectURL returns the virtual-hosted URL of key. It does not depend on the
// client region.
func (s *S3Storage) ObjectURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}
