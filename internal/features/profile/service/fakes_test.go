package service

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"time"

	"tg-info-backend/internal/features/profile/models"
	tgutils "tg-info-backend/internal/utils/telegram"
)

var errFake = stderrors.New("fake remote failure")

type fakeRemote struct {
	mu sync.Mutex

	entities  map[string]*models.RawEntity
	users     map[int64]*models.RawEntity
	details   map[int64]*models.RawChannelDetail
	photos    map[int64][]byte
	resolveFn func(ctx context.Context, handle string) (*models.RawEntity, error)

	detailErr error
	photoErr  error
	notReady  atomic.Bool

	resolveCalls  atomic.Int32
	detailCalls   atomic.Int32
	downloadCalls atomic.Int32
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		entities: map[string]*models.RawEntity{},
		users:    map[int64]*models.RawEntity{},
		details:  map[int64]*models.RawChannelDetail{},
		photos:   map[int64][]byte{},
	}
}

func (f *fakeRemote) Ready() bool {
	return !f.notReady.Load()
}

func (f *fakeRemote) Resolve(ctx context.Context, handle string) (*models.RawEntity, error) {
	f.resolveCalls.Add(1)
	if f.resolveFn != nil {
		return f.resolveFn(ctx, handle)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entities[handle]
	if !ok {
		return nil, stderrors.New("rpc error code 400: USERNAME_NOT_OCCUPIED")
	}
	return e, nil
}

func (f *fakeRemote) ResolveByID(_ context.Context, userID int64) (*models.RawEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, errFake
	}
	return u, nil
}

func (f *fakeRemote) FetchFullChannel(_ context.Context, entity *models.RawEntity) (*models.RawChannelDetail, error) {
	f.detailCalls.Add(1)
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.details[models.Deref(entity.ID)], nil
}

func (f *fakeRemote) DownloadPhoto(_ context.Context, entity *models.RawEntity) ([]byte, error) {
	f.downloadCalls.Add(1)
	if f.photoErr != nil {
		return nil, f.photoErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.photos[models.Deref(entity.ID)], nil
}

type memPhotoStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
}

func newMemPhotoStore() *memPhotoStore {
	return &memPhotoStore{files: map[string][]byte{}}
}

func (s *memPhotoStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filename] = data
	return s.URL(filename), nil
}

func (s *memPhotoStore) Exists(filename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[filename]
	return ok
}

func (s *memPhotoStore) URL(filename string) string {
	return tgutils.BuildPhotoURL("/static/photos", filename)
}

type memResolveCache struct {
	mu      sync.Mutex
	entries map[string]*models.RawEntity
	getErr  error
	setErr  error
}

func newMemResolveCache() *memResolveCache {
	return &memResolveCache{entries: map[string]*models.RawEntity{}}
}

func (c *memResolveCache) Get(_ context.Context, handle string) (*models.RawEntity, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[handle], nil
}

func (c *memResolveCache) Set(_ context.Context, handle string, entity *models.RawEntity) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[handle] = entity
	return nil
}

type memPhotoCache struct {
	mu      sync.Mutex
	entries map[int64]models.CachedPhoto
	getErr  error
	setErr  error
}

func newMemPhotoCache() *memPhotoCache {
	return &memPhotoCache{entries: map[int64]models.CachedPhoto{}}
}

func (c *memPhotoCache) Get(_ context.Context, entityID int64) (*models.CachedPhoto, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[entityID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *memPhotoCache) Set(_ context.Context, entityID int64, photo models.CachedPhoto) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entityID] = photo
	return nil
}

func fixedClock() time.Time {
	return time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)
}
