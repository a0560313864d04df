package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/finch-technologies/media-publisher/adapters"
	"github.com/finch-technologies/media-publisher/notify"
	"github.com/finch-technologies/media-publisher/utils"
)

type SQSConfig struct {
	QueueURL string `env:"QUEUE_URL"`
	Region   string `env:"REGION" envDefault:"us-east-1"`
	// MessageGroupId applies to FIFO queues only; defaults to the bucket name.
	MessageGroupId string `env:"MESSAGE_GROUP_ID"`
}

type sendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier is a notify.Notifier that sends each event as one SQS message.
type SQSNotifier struct {
	client sendMessageAPI
	config SQSConfig
}

func New(ctx context.Context, cfg SQSConfig) (*SQSNotifier, error) {
	if cfg.QueueURL == "" {
		return nil, errors.New("queue url is required")
	}

	awsCfg, err := adapters.LoadAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}

	return NewWithClient(sqs.NewFromConfig(awsCfg), cfg), nil
}

func NewWithClient(client sendMessageAPI, cfg SQSConfig) *SQSNotifier {
	return &SQSNotifier{client: client, config: cfg}
}

func (n *SQSNotifier) isFifo() bool {
	return strings.HasSuffix(n.config.QueueURL, ".fifo")
}

func (n *SQSNotifier) Notify(ctx context.Context, event notify.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal publish event: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.config.QueueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"bucket": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Bucket),
			},
		},
	}

	// Republishing the same metadata URL within the dedup window is dropped by SQS.
	if n.isFifo() {
		input.MessageGroupId = aws.String(utils.StringOrDefault(n.config.MessageGroupId, event.Bucket))
		input.MessageDeduplicationId = aws.String(utils.Hash(event.MetadataURL, 0))
	}

	if _, err := n.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send publish event: %w", err)
	}

	return nil
}
