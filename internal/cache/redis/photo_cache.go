package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"tg-info-backend/internal/features/profile/models"
	rplatform "tg-info-backend/internal/platform/redis"
)

// PhotoCache remembers the last stored photo file per entity, keyed so an
// avatar change (new photo id) forces a fresh download.
type PhotoCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewPhotoCache(client *rplatform.Client, ttl time.Duration) *PhotoCache {
	return &PhotoCache{client: client, ttl: ttl}
}

func (c *PhotoCache) key(entityID int64) string {
	return fmt.Sprintf("profile:photo:%d", entityID)
}

// Get returns the cached entry, or nil, nil on a miss.
func (c *PhotoCache) Get(ctx context.Context, entityID int64) (*models.CachedPhoto, error) {
	v, err := c.client.Get(ctx, c.key(entityID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p models.CachedPhoto
	if err := json.Unmarshal(v, &p); err != nil {
		return nil, fmt.Errorf("decode cached photo: %w", err)
	}
	return &p, nil
}

// Set stores the entry with TTL.
func (c *PhotoCache) Set(ctx context.Context, entityID int64, p models.CachedPhoto) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(entityID), b, c.ttl).Err()
}

// Invalidate removes cached entry for the entity.
func (c *PhotoCache) Invalidate(ctx context.Context, entityID int64) error {
	return c.client.Del(ctx, c.key(entityID)).Err()
}
