package telegram

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/tg"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"tg-info-backend/internal/common/errors"
	"tg-info-backend/internal/features/profile/models"
)

const adminsPageLimit = 100

type Config struct {
	APIID         int
	APIHash       string
	BotToken      string
	SessionString string

	StartTimeout  time.Duration
	RateLimit     float64
	PeerCacheSize int
}

// Client is an MTProto client signed in as a bot. It is built once at
// startup and shared by all requests.
type Client struct {
	cfg     Config
	client  *telegram.Client
	storage *MemorySession
	api     *tg.Client

	limiter    *rate.Limiter
	users      *lru.Cache[int64, *tg.User]
	downloader *downloader.Downloader
	log        zerolog.Logger

	mu     sync.RWMutex
	ready  bool
	cancel context.CancelFunc
	done   chan struct{}
}

// New validates cfg and seeds the session. The connection is opened by Start.
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.APIID == 0 {
		return nil, fmt.Errorf("API_ID is required")
	}
	if cfg.APIHash == "" {
		return nil, fmt.Errorf("API_HASH is required")
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.StartTimeout <= 0 {
		cfg.StartTimeout = 30 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.PeerCacheSize <= 0 {
		cfg.PeerCacheSize = 4096
	}

	storage := &MemorySession{}
	if err := LoadSessionString(ctx, cfg.SessionString, storage); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	users, err := lru.New[int64, *tg.User](cfg.PeerCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create peer cache: %w", err)
	}

	c := &Client{
		cfg:        cfg,
		storage:    storage,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), int(cfg.RateLimit)+1),
		users:      users,
		downloader: downloader.NewDownloader(),
		log:        log,
	}
	c.client = telegram.NewClient(cfg.APIID, cfg.APIHash, telegram.Options{
		SessionStorage: storage,
	})
	return c, nil
}

// Start connects, signs in with the bot token when the session is not
// authorized, and returns once the client can serve calls.
func (c *Client) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	errCh := make(chan error, 1)

	c.mu.Lock()
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go func() {
		defer close(done)
		err := c.client.Run(runCtx, func(ctx context.Context) error {
			if err := c.authorize(ctx); err != nil {
				return err
			}
			c.mu.Lock()
			c.api = c.client.API()
			c.ready = true
			c.mu.Unlock()
			close(ready)

			<-ctx.Done()
			return ctx.Err()
		})
		c.mu.Lock()
		c.ready = false
		c.mu.Unlock()
		errCh <- err
	}()

	startCtx, stop := context.WithTimeout(ctx, c.cfg.StartTimeout)
	defer stop()

	select {
	case <-ready:
		c.log.Info().Msg("Telegram client connected")
		return nil
	case err := <-errCh:
		cancel()
		return fmt.Errorf("telegram client stopped during start: %w", err)
	case <-startCtx.Done():
		cancel()
		<-done
		return fmt.Errorf("telegram client start: %w", startCtx.Err())
	}
}

func (c *Client) authorize(ctx context.Context) error {
	status, err := c.client.Auth().Status(ctx)
	if err != nil {
		return fmt.Errorf("auth status: %w", err)
	}
	if status.Authorized {
		c.log.Debug().Msg("Session restored")
		return nil
	}
	c.log.Info().Msg("Session not authorized, signing in as bot")
	if _, err := c.client.Auth().Bot(ctx, c.cfg.BotToken); err != nil {
		return fmt.Errorf("bot sign in: %w", err)
	}
	return nil
}

// Stop disconnects and waits for the run loop to exit.
func (c *Client) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	c.log.Info().Msg("Telegram client stopped")
}

func (c *Client) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// SessionString exports the current session in the format LoadSessionString accepts.
func (c *Client) SessionString(ctx context.Context) (string, error) {
	data, err := c.storage.LoadSession(ctx)
	if err != nil {
		return "", err
	}
	return EncodeSession(data), nil
}

// call waits for the rate limiter and returns the API handle.
func (c *Client) call(ctx context.Context) (*tg.Client, error) {
	c.mu.RLock()
	api, ready := c.api, c.ready
	c.mu.RUnlock()
	if !ready || api == nil {
		return nil, errNotStarted()
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return api, nil
}

func (c *Client) rememberUsers(users []tg.UserClass) {
	for _, u := range users {
		if user, ok := u.(*tg.User); ok {
			c.users.Add(user.ID, user)
		}
	}
}

// Resolve looks up a public username.
func (c *Client) Resolve(ctx context.Context, handle string) (*models.RawEntity, error) {
	api, err := c.call(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := api.ContactsResolveUsername(ctx, handle)
	if err != nil {
		return nil, mapError("contacts.resolveUsername", handle, err)
	}
	c.rememberUsers(resolved.Users)

	switch peer := resolved.Peer.(type) {
	case *tg.PeerUser:
		for _, u := range resolved.Users {
			if user, ok := u.(*tg.User); ok && user.ID == peer.UserID {
				return userToRaw(user), nil
			}
		}
	case *tg.PeerChannel:
		for _, ch := range resolved.Chats {
			if channel, ok := ch.(*tg.Channel); ok && channel.ID == peer.ChannelID {
				return channelToRaw(channel), nil
			}
		}
	case *tg.PeerChat:
		for _, ch := range resolved.Chats {
			if chat, ok := ch.(*tg.Chat); ok && chat.ID == peer.ChatID {
				return chatToRaw(chat), nil
			}
		}
	}
	return nil, errors.NewRemoteNotFoundError(handle, fmt.Errorf("peer %T missing from response", resolved.Peer))
}

// ResolveByID returns a user seen in an earlier response, or asks the
// server with an empty access hash.
func (c *Client) ResolveByID(ctx context.Context, userID int64) (*models.RawEntity, error) {
	if user, ok := c.users.Get(userID); ok {
		return userToRaw(user), nil
	}

	api, err := c.call(ctx)
	if err != nil {
		return nil, err
	}
	users, err := api.UsersGetUsers(ctx, []tg.InputUserClass{&tg.InputUser{UserID: userID}})
	if err != nil {
		return nil, mapError("users.getUsers", strconv.FormatInt(userID, 10), err)
	}
	c.rememberUsers(users)
	for _, u := range users {
		if user, ok := u.(*tg.User); ok && user.ID == userID {
			return userToRaw(user), nil
		}
	}
	return nil, errors.NewRemoteNotFoundError(strconv.FormatInt(userID, 10), nil)
}

// FetchFullChannel loads the participant count and admins of a group or channel.
func (c *Client) FetchFullChannel(ctx context.Context, entity *models.RawEntity) (*models.RawChannelDetail, error) {
	if entity.ID == nil {
		return nil, fmt.Errorf("entity without id")
	}
	switch entity.PeerKind {
	case models.PeerChannel:
		return c.fetchChannel(ctx, entity)
	case models.PeerChat:
		return c.fetchChat(ctx, entity)
	default:
		return nil, fmt.Errorf("peer kind %q has no full channel detail", entity.PeerKind)
	}
}

func (c *Client) fetchChannel(ctx context.Context, entity *models.RawEntity) (*models.RawChannelDetail, error) {
	api, err := c.call(ctx)
	if err != nil {
		return nil, err
	}
	ref := strconv.FormatInt(*entity.ID, 10)
	input := &tg.InputChannel{ChannelID: *entity.ID, AccessHash: entity.AccessHash}

	full, err := api.ChannelsGetFullChannel(ctx, input)
	if err != nil {
		return nil, mapError("channels.getFullChannel", ref, err)
	}
	c.rememberUsers(full.Users)

	detail := &models.RawChannelDetail{}
	if cf, ok := full.FullChat.(*tg.ChannelFull); ok {
		if count, ok := cf.GetParticipantsCount(); ok {
			detail.ParticipantsCount = models.Ptr(count)
		}
	}

	// Admin listing needs admin rights in broadcast channels; a failure
	// keeps the count and leaves the admin list empty.
	if api, err = c.call(ctx); err != nil {
		return detail, nil
	}
	res, err := api.ChannelsGetParticipants(ctx, &tg.ChannelsGetParticipantsRequest{
		Channel: input,
		Filter:  &tg.ChannelParticipantsAdmins{},
		Offset:  0,
		Limit:   adminsPageLimit,
	})
	if err != nil {
		c.log.Debug().Err(err).Int64("channel_id", *entity.ID).Msg("Admin list unavailable")
		return detail, nil
	}
	if parts, ok := res.(*tg.ChannelsChannelParticipants); ok {
		c.rememberUsers(parts.Users)
		for _, p := range parts.Participants {
			if rp, ok := channelParticipant(p); ok {
				detail.Participants = append(detail.Participants, rp)
			}
		}
	}
	return detail, nil
}

func (c *Client) fetchChat(ctx context.Context, entity *models.RawEntity) (*models.RawChannelDetail, error) {
	api, err := c.call(ctx)
	if err != nil {
		return nil, err
	}
	full, err := api.MessagesGetFullChat(ctx, *entity.ID)
	if err != nil {
		return nil, mapError("messages.getFullChat", strconv.FormatInt(*entity.ID, 10), err)
	}
	c.rememberUsers(full.Users)

	cf, ok := full.FullChat.(*tg.ChatFull)
	if !ok {
		return &models.RawChannelDetail{}, nil
	}
	return chatFullDetail(cf), nil
}

// DownloadPhoto fetches the big variant of the entity's current profile photo.
func (c *Client) DownloadPhoto(ctx context.Context, entity *models.RawEntity) ([]byte, error) {
	if entity.Photo == nil {
		return nil, nil
	}
	peer, ok := inputPeer(entity)
	if !ok {
		return nil, fmt.Errorf("entity has no usable peer reference")
	}
	api, err := c.call(ctx)
	if err != nil {
		return nil, err
	}

	location := &tg.InputPeerPhotoFileLocation{
		Big:     true,
		Peer:    peer,
		PhotoID: entity.Photo.ID,
	}
	var buf bytes.Buffer
	if _, err := c.downloader.Download(api, location).Stream(ctx, &buf); err != nil {
		return nil, mapError("upload.getFile", strconv.FormatInt(*entity.ID, 10), err)
	}
	return buf.Bytes(), nil
}
