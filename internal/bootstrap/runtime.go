// Package bootstrap wires runtime dependencies for the server and CLI
// entry points.
package bootstrap

import (
	"fmt"
	"strings"

	"duet/internal/cache"
	"duet/internal/config"
	"duet/internal/database"
	"duet/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	// Connect DB
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData && strings.EqualFold(cfg.Env, "development") {
		s := seed.NewSeeder(db)
		if err := s.Run(seed.Options{NumUsers: 20, NumLikes: 40}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
