package service

import (
	"context"

	"tg-info-backend/internal/features/profile/models"
)

// RemoteClient is the capability the live lookup path needs from the
// messaging platform.
type RemoteClient interface {
	Resolve(ctx context.Context, handle string) (*models.RawEntity, error)
	ResolveByID(ctx context.Context, userID int64) (*models.RawEntity, error)
	FetchFullChannel(ctx context.Context, entity *models.RawEntity) (*models.RawChannelDetail, error)
	// DownloadPhoto returns nil data when the entity has no photo.
	DownloadPhoto(ctx context.Context, entity *models.RawEntity) ([]byte, error)
	// Ready is false until the session is authorized and after the connection drops.
	Ready() bool
}

// PhotoStore persists downloaded photos and returns their public URL.
type PhotoStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Exists(filename string) bool
	URL(filename string) string
}

// ResolveCache caches handle resolution. Get returns nil, nil on a miss.
type ResolveCache interface {
	Get(ctx context.Context, handle string) (*models.RawEntity, error)
	Set(ctx context.Context, handle string, entity *models.RawEntity) error
}

// PhotoCache maps an entity to its last stored photo. Get returns nil, nil on a miss.
type PhotoCache interface {
	Get(ctx context.Context, entityID int64) (*models.CachedPhoto, error)
	Set(ctx context.Context, entityID int64, photo models.CachedPhoto) error
}

type ProfileService interface {
	Lookup(ctx context.Context, handle string) (*models.ProfileInfo, error)
	LiveMode() bool
}
