package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"developer-service/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const developerCacheKeyPrefix = "developer:"

// DeveloperCache is a read-through cache for single developer lookups.
// Implementations never return errors: a cache failure degrades to a miss.
type DeveloperCache interface {
	Get(ctx context.Context, id int) (*dto.DeveloperResponse, bool)
	Set(ctx context.Context, developer *dto.DeveloperResponse)
	Invalidate(ctx context.Context, id int)
}

type redisDeveloperCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisDeveloperCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) DeveloperCache {
	return &redisDeveloperCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func DeveloperCacheKey(id int) string {
	return fmt.Sprintf("%s%d", developerCacheKeyPrefix, id)
}

func (c *redisDeveloperCache) Get(ctx context.Context, id int) (*dto.DeveloperResponse, bool) {
	data, err := c.client.Get(ctx, DeveloperCacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read developer cache: %+v", err)
		}
		return nil, false
	}

	var developer dto.DeveloperResponse
	if err := json.Unmarshal(data, &developer); err != nil {
		c.log.Warnf("Failed to decode cached developer: %+v", err)
		return nil, false
	}
	return &developer, true
}

func (c *redisDeveloperCache) Set(ctx context.Context, developer *dto.DeveloperResponse) {
	if developer == nil {
		return
	}

	data, err := json.Marshal(developer)
	if err != nil {
		c.log.Warnf("Failed to encode developer for cache: %+v", err)
		return
	}

	if err := c.client.Set(ctx, DeveloperCacheKey(developer.ID), data, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write developer cache: %+v", err)
	}
}

func (c *redisDeveloperCache) Invalidate(ctx context.Context, id int) {
	if err := c.client.Del(ctx, DeveloperCacheKey(id)).Err(); err != nil {
		c.log.Warnf("Failed to invalidate developer cache: %+v", err)
	}
}

type noopDeveloperCache struct{}

// NewNoopDeveloperCache is used when Redis is not configured.
func NewNoopDeveloperCache() DeveloperCache {
	return noopDeveloperCache{}
}

func (noopDeveloperCache) Get(context.Context, int) (*dto.DeveloperResponse, bool) { return nil, false }
func (noopDeveloperCache) Set(context.Context, *dto.DeveloperResponse)            {}
func (noopDeveloperCache) Invalidate(context.Context, int)                        {}
