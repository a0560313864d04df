package adapters

import (
	"crypto/tls"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	Scheme   string `env:"REDIS_SCHEME"`
	DB       int    `env:"REDIS_DB"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

var (
	redisClientMap = map[string]*redis.Client{}
	redisMu        sync.Mutex
)

// GetRedisClient returns a client shared by every caller using the same address and db.
func GetRedisClient(cfg RedisConfig) *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()

	cacheKey := fmt.Sprintf("%s/%d", cfg.Addr(), cfg.DB)

	redisClient := redisClientMap[cacheKey]

	if redisClient == nil {
		options := &redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password,
			DB:       cfg.DB,
		}

		if cfg.Scheme == "tls" {
			options.TLSConfig = &tls.Config{}
		}

		redisClient = redis.NewClient(options)
		redisClientMap[cacheKey] = redisClient
	}

	return redisClient
}
