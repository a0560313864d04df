package adapters

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	dynamodbClients = map[string]*dynamodb.Client{}
	dynamodbMu      sync.Mutex
)

func GetDynamoClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	dynamodbMu.Lock()
	defer dynamodbMu.Unlock()

	if client, ok := dynamodbClients[region]; ok {
		return client, nil
	}

	cfg, err := LoadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg)
	dynamodbClients[region] = client

	return client, nil
}
