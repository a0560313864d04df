package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const retention = 24 * time.Hour

type putItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type logItem struct {
	UniqueID       string `dynamodbav:"unique_id"`
	Timestamp      int64  `dynamodbav:"timestamp"`
	Event          string `dynamodbav:"event"`
	ExpirationTime int64  `dynamodbav:"expiration_time"`
}

type DynamoDBLogDriver struct {
	db        putItemAPI
	tableName string
	now       func() time.Time
}

func New(db putItemAPI, tableName string) *DynamoDBLogDriver {
	return &DynamoDBLogDriver{
		db:        db,
		tableName: tableName,
		now:       time.Now,
	}
}

// Write stores one log line per item; items expire through the table TTL on expiration_time.
func (d *DynamoDBLogDriver) Write(p []byte) (n int, err error) {
	now := d.now()

	item, err := attributevalue.MarshalMap(logItem{
		UniqueID:       uuid.NewString(),
		Timestamp:      now.Unix(),
		Event:          string(p),
		ExpirationTime: now.Add(retention).Unix(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal log item: %w", err)
	}

	_, err = d.db.PutItem(context.Background(), &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	})
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
