package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"portfolio-admin/internal/application/service"
)

const brochureTTL = time.Hour

type redisBrochureCache struct {
	client *redis.Client
}

func NewRedisBrochureCache(client *redis.Client) service.BrochureCache {
	return &redisBrochureCache{client: client}
}

func brochureKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("brochure:%s", ownerID)
}

func (c *redisBrochureCache) Get(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, brochureKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}
		return nil, err
	}
	return payload, nil
}

func (c *redisBrochureCache) Set(ctx context.Context, ownerID uuid.UUID, payload []byte) error {
	return c.client.Set(ctx, brochureKey(ownerID), payload, brochureTTL).Err()
}

func (c *redisBrochureCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	return c.client.Del(ctx, brochureKey(ownerID)).Err()
}
