package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"tg-info-backend/internal/common/errors"
	"tg-info-backend/internal/common/validation"
	"tg-info-backend/internal/features/profile/models"
)

const MsgNoUsername = "No username provided"

// Phrases the platform uses when a handle does not resolve. Typed errors from
// the client are preferred; this catches untyped ones.
var notFoundMarkers = []string{
	"username_not_occupied",
	"username_invalid",
	"no user has",
	"cannot find any entity",
	"entity not found",
	"username not found",
}

type Options struct {
	// FallbackToDemoOnNotFound answers unresolvable handles with demo data.
	FallbackToDemoOnNotFound bool
	// DemoOnUnavailable answers with demo data when no live client is configured
	// or the client is not connected.
	DemoOnUnavailable bool
	RequestTimeout    time.Duration
	MaxConcurrent     int64
}

type profileService struct {
	remote       RemoteClient
	resolveCache ResolveCache
	normalizer   *Normalizer
	demo         *DemoGenerator
	sem          *semaphore.Weighted
	opts         Options
	log          zerolog.Logger
}

// NewProfileService wires the lookup path. remote nil means no live client;
// resolveCache may be nil.
func NewProfileService(remote RemoteClient, resolveCache ResolveCache, normalizer *Normalizer, demo *DemoGenerator, opts Options, log zerolog.Logger) ProfileService {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 20 * time.Second
	}
	return &profileService{
		remote:       remote,
		resolveCache: resolveCache,
		normalizer:   normalizer,
		demo:         demo,
		sem:          semaphore.NewWeighted(opts.MaxConcurrent),
		opts:         opts,
		log:          log,
	}
}

// NormalizeHandle trims whitespace and a single leading "@".
func NormalizeHandle(handle string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

// LiveMode reports whether lookups currently go to the platform.
func (s *profileService) LiveMode() bool {
	return s.remote != nil && s.remote.Ready()
}

func (s *profileService) Lookup(ctx context.Context, handle string) (*models.ProfileInfo, error) {
	handle = NormalizeHandle(handle)
	if handle == "" {
		return nil, errors.NewInvalidInputError("username", MsgNoUsername)
	}

	if !s.LiveMode() {
		if !s.opts.DemoOnUnavailable {
			return nil, errors.NewRemoteUnavailableError(s.unavailableReason())
		}
		s.log.Debug().Str("handle", handle).Msg("Serving demo profile, live client unavailable")
		return s.demo.Generate(handle), nil
	}

	info, err := s.lookupLive(ctx, handle)
	if err == nil {
		return info, nil
	}

	if errors.HasCode(err, errors.ErrCodeRemoteNotFound) && s.opts.FallbackToDemoOnNotFound {
		s.log.Info().Str("handle", handle).Msg("Handle not found, serving demo profile")
		return s.demo.Generate(handle), nil
	}
	return nil, err
}

func (s *profileService) unavailableReason() string {
	if s.remote == nil {
		return "credentials are not configured"
	}
	return "client is not connected"
}

func (s *profileService) lookupLive(ctx context.Context, handle string) (*models.ProfileInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, s.classify(ctx, handle, "acquire", err)
	}
	defer s.sem.Release(1)

	raw, err := s.resolve(ctx, handle)
	if err != nil {
		return nil, s.classify(ctx, handle, "resolve", err)
	}

	info := s.normalizer.Normalize(ctx, raw, nil)
	if ctx.Err() != nil && stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		s.log.Warn().Str("handle", handle).Msg("Lookup deadline hit during enrichment, returning partial profile")
	}
	return info, nil
}

func (s *profileService) resolve(ctx context.Context, handle string) (*models.RawEntity, error) {
	if err := validation.ValidateUsername(handle); err != nil {
		return nil, errors.NewRemoteNotFoundError(handle, err)
	}

	if s.resolveCache != nil {
		cached, err := s.resolveCache.Get(ctx, handle)
		if err != nil {
			logDegraded(s.log, errors.NewCacheError("resolve.get", err).WithDetail("handle", handle))
		} else if cached != nil {
			return cached, nil
		}
	}

	raw, err := s.remote.Resolve(ctx, handle)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.NewRemoteNotFoundError(handle, nil)
	}

	if s.resolveCache != nil {
		if err := s.resolveCache.Set(ctx, handle, raw); err != nil {
			logDegraded(s.log, errors.NewCacheError("resolve.set", err).WithDetail("handle", handle))
		}
	}
	return raw, nil
}

// classify maps a remote failure onto the lookup error kinds.
func (s *profileService) classify(ctx context.Context, handle, operation string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.NewRemoteTimeoutError(operation, s.opts.RequestTimeout, err).
			WithDetail("handle", handle)
	}

	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}

	if isNotFoundText(err) {
		return errors.NewRemoteNotFoundError(handle, err)
	}

	if stderrors.Is(err, context.Canceled) {
		return errors.Wrap(err, errors.ErrCodeInternal, "Request cancelled")
	}

	return errors.NewTelegramAPIError(operation, err).WithDetail("handle", handle)
}

func isNotFoundText(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range notFoundMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
