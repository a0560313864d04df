package redis

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestWriteUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	driver := New(rdb, "media-publisher:logs", 10)

	n, err := driver.Write([]byte(`{"level":"info"}`))
	if err == nil {
		t.Fatal("expected error writing to an unreachable server")
	}
	if n != 0 {
		t.Errorf("expected 0 bytes written, got %d", n)
	}
}
