package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tg-info-backend/internal/common/errors"
	"tg-info-backend/internal/features/profile/models"
	tgutils "tg-info-backend/internal/utils/telegram"
)

const statusTypePrefix = "userstatus"

// Classify picks the entity type. Order matters: bot is checked first
// because bot accounts may also carry group or channel flags.
func Classify(raw *models.RawEntity) models.EntityType {
	switch {
	case models.Deref(raw.Bot):
		return models.EntityBot
	case models.Deref(raw.Megagroup):
		return models.EntityGroup
	case models.Deref(raw.Broadcast):
		return models.EntityChannel
	case models.Deref(raw.Username) != "" && raw.ID != nil && *raw.ID < 0:
		return models.EntityChannel
	default:
		return models.EntityUser
	}
}

// DisplayName prefers the title, then first and last name, then "Unknown".
func DisplayName(raw *models.RawEntity) string {
	if title := strings.TrimSpace(models.Deref(raw.Title)); title != "" {
		return title
	}
	name := strings.TrimSpace(models.Deref(raw.FirstName) + " " + models.Deref(raw.LastName))
	if name == "" {
		return models.Unknown
	}
	return name
}

// NormalizeUsername returns "@username", or "" when there is none.
func NormalizeUsername(username *string) string {
	u := strings.TrimPrefix(strings.TrimSpace(models.Deref(username)), "@")
	if u == "" {
		return ""
	}
	return "@" + u
}

// MapStatus converts a remote status representation into a Status.
func MapStatus(raw *string) models.Status {
	if raw == nil {
		return models.StatusUnknown
	}
	lower := strings.ToLower(strings.TrimSpace(*raw))
	switch {
	case strings.Contains(lower, "online"):
		return models.StatusOnline
	case strings.Contains(lower, "offline"):
		return models.StatusOffline
	case strings.Contains(lower, "recently"):
		return models.StatusRecentlyOnline
	case strings.Contains(lower, "last"):
		return models.StatusLastSeenRecently
	}

	rest := strings.TrimSpace(*raw)
	if strings.HasPrefix(strings.ToLower(rest), statusTypePrefix) {
		rest = rest[len(statusTypePrefix):]
	}
	rest = strings.Trim(rest, " _:.")
	if rest == "" {
		return models.StatusUnknown
	}
	return models.Status(cases.Title(language.Und).String(rest))
}

type NormalizerOptions struct {
	ExposeEstimatedCreation bool
}

// Normalizer turns remote entities into ProfileInfo records. Photo download
// and channel enrichment degrade silently on failure.
type Normalizer struct {
	remote     RemoteClient
	photos     PhotoStore
	photoCache PhotoCache
	opts       NormalizerOptions
	now        func() time.Time
	log        zerolog.Logger
}

// NewNormalizer builds a Normalizer. photoCache may be nil.
func NewNormalizer(remote RemoteClient, photos PhotoStore, photoCache PhotoCache, opts NormalizerOptions, now func() time.Time, log zerolog.Logger) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{
		remote:     remote,
		photos:     photos,
		photoCache: photoCache,
		opts:       opts,
		now:        now,
		log:        log,
	}
}

// Normalize builds the live ProfileInfo for raw. When full is nil and the
// entity is a group or channel, the detail is fetched from the remote client.
func (n *Normalizer) Normalize(ctx context.Context, raw *models.RawEntity, full *models.RawChannelDetail) *models.ProfileInfo {
	entityType := Classify(raw)

	info := &models.ProfileInfo{
		EntityType:     entityType,
		Name:           DisplayName(raw),
		Username:       NormalizeUsername(raw.Username),
		ID:             models.UnknownNumber(),
		Premium:        models.Deref(raw.Premium),
		Verified:       models.Deref(raw.Verified),
		Scam:           models.Deref(raw.Scam),
		Fake:           models.Deref(raw.Fake),
		DataCenter:     models.DataCenterUnknown,
		Status:         MapStatus(raw.Status),
		AccountCreated: models.NotAvailableViaAPI,
		Age:            models.Unknown,
		DemoMode:       false,
	}
	if raw.ID != nil {
		info.ID = models.KnownNumber(*raw.ID)
		if n.opts.ExposeEstimatedCreation {
			created := tgutils.EstimateCreationDate(*raw.ID)
			info.EstimatedAccountCreated = tgutils.FormatCreationDate(created)
			info.EstimatedAge = tgutils.FormatAge(created, n.now().UTC())
		}
	}

	info.ProfilePicURL = n.profilePhoto(ctx, raw)

	if entityType.HasMembership() {
		info.Membership = n.membership(ctx, raw, full)
	}

	return info
}

func (n *Normalizer) profilePhoto(ctx context.Context, raw *models.RawEntity) string {
	if raw.Photo == nil || raw.ID == nil || n.photos == nil || n.remote == nil {
		return ""
	}
	entityID := *raw.ID

	if n.photoCache != nil {
		cached, err := n.photoCache.Get(ctx, entityID)
		if err != nil {
			logDegraded(n.log, errors.NewCacheError("photo.get", err).WithDetail("entity_id", entityID))
		} else if cached != nil && cached.PhotoID == raw.Photo.ID && n.photos.Exists(cached.Filename) {
			return n.photos.URL(cached.Filename)
		}
	}

	data, err := n.remote.DownloadPhoto(ctx, raw)
	if err != nil {
		logDegraded(n.log, errors.NewPhotoDownloadError(entityID, err))
		return ""
	}
	if len(data) == 0 {
		return ""
	}

	filename := tgutils.PhotoFilename(entityID, n.now())
	url, err := n.photos.Save(ctx, filename, data)
	if err != nil {
		logDegraded(n.log, errors.NewPhotoDownloadError(entityID, err))
		return ""
	}

	if n.photoCache != nil {
		if err := n.photoCache.Set(ctx, entityID, models.CachedPhoto{PhotoID: raw.Photo.ID, Filename: filename}); err != nil {
			logDegraded(n.log, errors.NewCacheError("photo.set", err).WithDetail("entity_id", entityID))
		}
	}
	return url
}

func (n *Normalizer) membership(ctx context.Context, raw *models.RawEntity, full *models.RawChannelDetail) *models.Membership {
	m := &models.Membership{
		MembersCount: models.UnknownNumber(),
		Admins:       []models.Admin{},
	}

	if full == nil {
		if n.remote == nil {
			return m
		}
		var err error
		full, err = n.remote.FetchFullChannel(ctx, raw)
		if err != nil {
			logDegraded(n.log, errors.NewPartialEnrichmentError(models.Deref(raw.ID), err))
			return m
		}
		if full == nil {
			return m
		}
	}

	if full.ParticipantsCount != nil {
		m.MembersCount = models.KnownNumber(int64(*full.ParticipantsCount))
	}

	for _, p := range full.Participants {
		if !p.IsAdmin() {
			continue
		}
		if n.remote == nil || ctx.Err() != nil {
			break
		}
		user, err := n.remote.ResolveByID(ctx, p.UserID)
		if err != nil || user == nil {
			n.log.Debug().Err(err).Int64("user_id", p.UserID).Msg("Skipping unresolved admin")
			continue
		}
		m.Admins = append(m.Admins, models.Admin{
			Name:     DisplayName(user),
			Username: NormalizeUsername(user.Username),
		})
	}
	return m
}

// logDegraded records a failure that was absorbed into the response. Any
// other kind reaching here is a bug and is logged as an error.
func logDegraded(log zerolog.Logger, err *errors.AppError) {
	event := log.Warn()
	if !err.IsDegraded() {
		event = log.Error()
	}
	event.
		Str("error_code", string(err.Code)).
		Interface("details", err.Details).
		Err(err.Cause).
		Msg(err.Message)
}
