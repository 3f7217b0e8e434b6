// Package bootstrap wires configuration into live runtime dependencies.
package bootstrap

import (
	"fmt"
	"time"

	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedBuiltIns upserts the built-in groups after connecting.
	SeedBuiltIns bool
}

// InitRuntime connects to the database and Redis and applies the
// configured feed cache TTL. The Redis client may be nil when the server
// is unreachable; the cache degrades to the database in that case.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if cfg.FeedCacheTTLSeconds > 0 {
		cache.SetHomeFeedTTL(time.Duration(cfg.FeedCacheTTLSeconds) * time.Second)
	}

	if opts.SeedBuiltIns {
		if err := seed.Groups(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in groups: %w", err)
		}
	}

	return db, r, nil
}
