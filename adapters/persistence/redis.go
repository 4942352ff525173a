package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"portfolio-admin/internal/config"
	"portfolio-admin/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cannot connect Redis: %w", err)
	}

	log.Info("Connected to Redis.")
	return rdb, nil
}
