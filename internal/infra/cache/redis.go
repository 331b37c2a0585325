package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/masblog-io/masblog/internal/config"
)

// New builds the Redis client used for hot-path read caching. Callers must
// tolerate a nil-ish (unreachable) client; cache misses always fall through
// to the database.
func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}
