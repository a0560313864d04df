package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisLogDriver pushes each log line onto a capped Redis list.
type RedisLogDriver struct {
	rdb       *redis.Client
	list      string
	maxLength int64
}

func New(rdb *redis.Client, list string, maxLength int64) *RedisLogDriver {
	return &RedisLogDriver{
		rdb:       rdb,
		list:      list,
		maxLength: maxLength,
	}
}

// Write implements io.Writer so the driver can sit behind zerolog.
func (r *RedisLogDriver) Write(p []byte) (n int, err error) {
	ctx := context.Background()

	_, err = r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, r.list, string(p))
		if r.maxLength > 0 {
			pipe.LTrim(ctx, r.list, 0, r.maxLength-1)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
