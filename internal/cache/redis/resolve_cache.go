package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"tg-info-backend/internal/features/profile/models"
	rplatform "tg-info-backend/internal/platform/redis"
)

// ResolveCache keeps resolved entities per handle so repeated lookups do not
// hit contacts.resolveUsername, which is aggressively flood-limited.
type ResolveCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewResolveCache(client *rplatform.Client, ttl time.Duration) *ResolveCache {
	return &ResolveCache{client: client, ttl: ttl}
}

func (c *ResolveCache) key(handle string) string {
	return fmt.Sprintf("profile:resolve:%s", strings.ToLower(handle))
}

// Get returns the cached entity, or nil, nil on a miss.
func (c *ResolveCache) Get(ctx context.Context, handle string) (*models.RawEntity, error) {
	v, err := c.client.Get(ctx, c.key(handle)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var e models.RawEntity
	if err := json.Unmarshal(v, &e); err != nil {
		return nil, fmt.Errorf("decode cached entity: %w", err)
	}
	return &e, nil
}

// Set stores the entity with TTL.
func (c *ResolveCache) Set(ctx context.Context, handle string, e *models.RawEntity) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(handle), b, c.ttl).Err()
}

// Invalidate removes the cached entity for handle.
func (c *ResolveCache) Invalidate(ctx context.Context, handle string) error {
	return c.client.Del(ctx, c.key(handle)).Err()
}
