package telegram

import (
	"github.com/gotd/td/tg"

	"tg-info-backend/internal/features/profile/models"
)

// userToRaw converts a user. userStatusEmpty is treated as no status.
func userToRaw(u *tg.User) *models.RawEntity {
	raw := &models.RawEntity{
		ID:         models.Ptr(u.ID),
		Bot:        models.Ptr(u.Bot),
		Premium:    models.Ptr(u.Premium),
		Verified:   models.Ptr(u.Verified),
		Scam:       models.Ptr(u.Scam),
		Fake:       models.Ptr(u.Fake),
		PeerKind:   models.PeerUser,
		AccessHash: u.AccessHash,
	}
	if u.FirstName != "" {
		raw.FirstName = models.Ptr(u.FirstName)
	}
	if u.LastName != "" {
		raw.LastName = models.Ptr(u.LastName)
	}
	if name := userUsername(u); name != "" {
		raw.Username = models.Ptr(name)
	}
	if p, ok := u.Photo.(*tg.UserProfilePhoto); ok {
		raw.Photo = &models.RawPhoto{ID: p.PhotoID, DCID: p.DCID}
	}
	if u.Status != nil {
		if _, empty := u.Status.(*tg.UserStatusEmpty); !empty {
			raw.Status = models.Ptr(u.Status.TypeName())
		}
	}
	return raw
}

// userUsername falls back to the first active collectible username.
func userUsername(u *tg.User) string {
	if u.Username != "" {
		return u.Username
	}
	for _, un := range u.Usernames {
		if un.Active {
			return un.Username
		}
	}
	return ""
}

func channelToRaw(ch *tg.Channel) *models.RawEntity {
	raw := &models.RawEntity{
		ID:         models.Ptr(ch.ID),
		Title:      models.Ptr(ch.Title),
		Broadcast:  models.Ptr(ch.Broadcast),
		Megagroup:  models.Ptr(ch.Megagroup),
		Verified:   models.Ptr(ch.Verified),
		Scam:       models.Ptr(ch.Scam),
		Fake:       models.Ptr(ch.Fake),
		PeerKind:   models.PeerChannel,
		AccessHash: ch.AccessHash,
	}
	username := ch.Username
	if username == "" {
		for _, un := range ch.Usernames {
			if un.Active {
				username = un.Username
				break
			}
		}
	}
	if username != "" {
		raw.Username = models.Ptr(username)
	}
	if p, ok := ch.Photo.(*tg.ChatPhoto); ok {
		raw.Photo = &models.RawPhoto{ID: p.PhotoID, DCID: p.DCID}
	}
	return raw
}

// chatToRaw converts a legacy basic group, which behaves as a group.
func chatToRaw(c *tg.Chat) *models.RawEntity {
	raw := &models.RawEntity{
		ID:        models.Ptr(c.ID),
		Title:     models.Ptr(c.Title),
		Megagroup: models.Ptr(true),
		PeerKind:  models.PeerChat,
	}
	if p, ok := c.Photo.(*tg.ChatPhoto); ok {
		raw.Photo = &models.RawPhoto{ID: p.PhotoID, DCID: p.DCID}
	}
	return raw
}

// channelParticipant projects a channel participant entry.
func channelParticipant(p tg.ChannelParticipantClass) (models.RawParticipant, bool) {
	switch v := p.(type) {
	case *tg.ChannelParticipantCreator:
		return models.RawParticipant{UserID: v.UserID, AdminRights: true, Rank: v.Rank}, true
	case *tg.ChannelParticipantAdmin:
		return models.RawParticipant{UserID: v.UserID, AdminRights: true, Rank: v.Rank}, true
	case *tg.ChannelParticipant:
		return models.RawParticipant{UserID: v.UserID}, true
	case *tg.ChannelParticipantSelf:
		return models.RawParticipant{UserID: v.UserID}, true
	default:
		return models.RawParticipant{}, false
	}
}

// chatParticipant projects a basic group participant entry.
func chatParticipant(p tg.ChatParticipantClass) (models.RawParticipant, bool) {
	switch v := p.(type) {
	case *tg.ChatParticipantCreator:
		return models.RawParticipant{UserID: v.UserID, AdminRights: true}, true
	case *tg.ChatParticipantAdmin:
		return models.RawParticipant{UserID: v.UserID, AdminRights: true}, true
	case *tg.ChatParticipant:
		return models.RawParticipant{UserID: v.UserID}, true
	default:
		return models.RawParticipant{}, false
	}
}

// chatFullDetail extracts the detail of a basic group.
func chatFullDetail(full *tg.ChatFull) *models.RawChannelDetail {
	detail := &models.RawChannelDetail{}
	parts, ok := full.Participants.(*tg.ChatParticipants)
	if !ok {
		return detail
	}
	detail.ParticipantsCount = models.Ptr(len(parts.Participants))
	for _, p := range parts.Participants {
		if rp, ok := chatParticipant(p); ok {
			detail.Participants = append(detail.Participants, rp)
		}
	}
	return detail
}

func inputPeer(e *models.RawEntity) (tg.InputPeerClass, bool) {
	if e.ID == nil {
		return nil, false
	}
	switch e.PeerKind {
	case models.PeerUser:
		return &tg.InputPeerUser{UserID: *e.ID, AccessHash: e.AccessHash}, true
	case models.PeerChannel:
		return &tg.InputPeerChannel{ChannelID: *e.ID, AccessHash: e.AccessHash}, true
	case models.PeerChat:
		return &tg.InputPeerChat{ChatID: *e.ID}, true
	default:
		return nil, false
	}
}
