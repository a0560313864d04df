package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTable struct {
	inputs []*dynamodb.PutItemInput
	err    error
}

func (f *fakeTable) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestWrite(t *testing.T) {
	table := &fakeTable{}
	driver := New(table, "media-publisher.test.logs")
	driver.now = func() time.Time { return time.Unix(1700000000, 0) }

	line := []byte(`{"level":"info","message":"uploaded"}`)

	n, err := driver.Write(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(line) {
		t.Errorf("expected %d bytes written, got %d", len(line), n)
	}
	if len(table.inputs) != 1 {
		t.Fatalf("expected 1 PutItem call, got %d", len(table.inputs))
	}

	input := table.inputs[0]
	if *input.TableName != "media-publisher.test.logs" {
		t.Errorf("expected table media-publisher.test.logs, got %s", *input.TableName)
	}

	event, ok := input.Item["event"].(*types.AttributeValueMemberS)
	if !ok || event.Value != string(line) {
		t.Errorf("expected event attribute %s, got %v", line, input.Item["event"])
	}

	ts, ok := input.Item["timestamp"].(*types.AttributeValueMemberN)
	if !ok || ts.Value != "1700000000" {
		t.Errorf("expected timestamp 1700000000, got %v", input.Item["timestamp"])
	}

	exp, ok := input.Item["expiration_time"].(*types.AttributeValueMemberN)
	if !ok || exp.Value != "1700086400" {
		t.Errorf("expected expiration_time 1700086400, got %v", input.Item["expiration_time"])
	}

	if id, ok := input.Item["unique_id"].(*types.AttributeValueMemberS); !ok || id.Value == "" {
		t.Error("expected a unique_id attribute")
	}
}

func TestWriteError(t *testing.T) {
	driver := New(&fakeTable{err: errors.New("throttled")}, "logs")

	n, err := driver.Write([]byte("x"))
	if err == nil {
		t.Error("expected error but got none")
	}
	if n != 0 {
		t.Errorf("expected 0 bytes written, got %d", n)
	}
}
