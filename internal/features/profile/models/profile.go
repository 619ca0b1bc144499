package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// EntityType is the canonical class of a profile
type EntityType string

const (
	EntityUser    EntityType = "User"
	EntityBot     EntityType = "Bot"
	EntityGroup   EntityType = "Group"
	EntityChannel EntityType = "Channel"
)

// HasMembership reports whether profiles of this type carry members_count and admins.
func (t EntityType) HasMembership() bool {
	return t == EntityGroup || t == EntityChannel
}

// Status is the canonical presence status. Unrecognized remote statuses are
// passed through title-cased, so the set is open.
type Status string

const (
	StatusOnline           Status = "Online"
	StatusOffline          Status = "Offline"
	StatusRecentlyOnline   Status = "RecentlyOnline"
	StatusLastSeenRecently Status = "LastSeenRecently"
	StatusUnknown          Status = "Unknown"
)

const (
	Unknown             = "Unknown"
	NotAvailableViaAPI  = "Not available via API"
	DemoDisclaimer      = "This is demo data. Configure Telegram API for real information."
	DataCenterUnknown   = Unknown
	unknownJSONSentinel = `"` + Unknown + `"`
)

// Number is an integer that serializes as the string "Unknown" when not set.
type Number struct {
	Value int64
	Valid bool
}

func KnownNumber(v int64) Number {
	return Number{Value: v, Valid: true}
}

func UnknownNumber() Number {
	return Number{}
}

func (n Number) String() string {
	if !n.Valid {
		return Unknown
	}
	return strconv.FormatInt(n.Value, 10)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte(unknownJSONSentinel), nil
	}
	return []byte(strconv.FormatInt(n.Value, 10)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte(unknownJSONSentinel)) || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("number or %q expected: %w", Unknown, err)
	}
	*n = KnownNumber(v)
	return nil
}

// Admin is a group/channel administrator
type Admin struct {
	Name     string `json:"name" example:"Pavel Durov"`
	Username string `json:"username,omitempty" example:"@durov"`
}

// Membership is present only on groups and channels.
type Membership struct {
	MembersCount Number  `json:"members_count" swaggertype:"primitive,string" example:"42"`
	Admins       []Admin `json:"admins"`
}

// ProfileInfo is the canonical lookup result. It is built once per request
// and not modified afterwards.
type ProfileInfo struct {
	EntityType EntityType `json:"entity_type" enums:"User,Bot,Group,Channel" example:"User"`
	Name       string     `json:"name" example:"Pavel Durov"`
	Username   string     `json:"username,omitempty" example:"@durov"`
	ID         Number     `json:"id" swaggertype:"primitive,string" example:"1006503122"`
	Premium    bool       `json:"premium"`
	Verified   bool       `json:"verified"`
	Scam       bool       `json:"scam"`
	Fake       bool       `json:"fake"`
	DataCenter string     `json:"data_center" example:"Unknown"`
	Status     Status     `json:"status" example:"RecentlyOnline"`

	AccountCreated string `json:"account_created" example:"Not available via API"`
	Age            string `json:"age" example:"Unknown"`

	EstimatedAccountCreated string `json:"estimated_account_created,omitempty" example:"Jan 02, 2017"`
	EstimatedAge            string `json:"estimated_age,omitempty" example:"8 years, 9 months, 20 days"`

	ProfilePicURL string `json:"profile_pic_url,omitempty" example:"/static/photos/1006503122_1700000000000.jpg"`

	*Membership

	DemoMode bool   `json:"demo_mode"`
	Message  string `json:"message,omitempty"`
}
