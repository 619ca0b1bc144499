package models

// PeerKind is the MTProto peer class of a resolved entity
type PeerKind string

const (
	PeerUser    PeerKind = "user"
	PeerChat    PeerKind = "chat"
	PeerChannel PeerKind = "channel"
)

// RawPhoto references a profile photo on the remote platform
type RawPhoto struct {
	ID   int64 `json:"id"`
	DCID int   `json:"dc_id"`
}

// RawEntity is a remote user, bot, group or channel as returned by the
// platform. Every field is optional; nil means the source did not carry it.
type RawEntity struct {
	ID        *int64    `json:"id,omitempty"`
	Title     *string   `json:"title,omitempty"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Username  *string   `json:"username,omitempty"`
	Bot       *bool     `json:"bot,omitempty"`
	Megagroup *bool     `json:"megagroup,omitempty"`
	Broadcast *bool     `json:"broadcast,omitempty"`
	Premium   *bool     `json:"premium,omitempty"`
	Verified  *bool     `json:"verified,omitempty"`
	Scam      *bool     `json:"scam,omitempty"`
	Fake      *bool     `json:"fake,omitempty"`
	Photo     *RawPhoto `json:"photo,omitempty"`
	Status    *string   `json:"status,omitempty"`

	// Needed for follow-up calls against the same peer.
	PeerKind   PeerKind `json:"peer_kind,omitempty"`
	AccessHash int64    `json:"access_hash,omitempty"`
}

// RawParticipant is a member entry of a full channel/chat detail
type RawParticipant struct {
	UserID      int64  `json:"user_id"`
	AdminRights bool   `json:"admin_rights"`
	Rank        string `json:"rank,omitempty"`
}

// IsAdmin reports whether the participant carries admin rights or a rank marker.
func (p RawParticipant) IsAdmin() bool {
	return p.AdminRights || p.Rank != ""
}

// RawChannelDetail is the enrichment payload for groups and channels
type RawChannelDetail struct {
	ParticipantsCount *int             `json:"participants_count,omitempty"`
	Participants      []RawParticipant `json:"participants,omitempty"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p or the zero value.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
