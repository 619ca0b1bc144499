package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tg-info-backend/internal/features/profile/models"
	tgutils "tg-info-backend/internal/utils/telegram"
)

const (
	demoBaseID  = 100_000_000
	demoIDRange = 400_000_000
)

var (
	demoEntityTypes = [...]models.EntityType{models.EntityUser, models.EntityChannel, models.EntityGroup, models.EntityBot}
	demoStatuses    = [...]models.Status{models.StatusOnline, models.StatusOffline, models.StatusRecentlyOnline}
)

// DemoGenerator synthesizes placeholder profiles without any I/O. Output
// depends only on the handle and the UTC day of the clock.
type DemoGenerator struct {
	now func() time.Time
}

func NewDemoGenerator(now func() time.Time) *DemoGenerator {
	if now == nil {
		now = time.Now
	}
	return &DemoGenerator{now: now}
}

// Generate returns the demo profile for handle.
func (g *DemoGenerator) Generate(handle string) *models.ProfileInfo {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	seed := xxhash.Sum64String(handle)

	entityType := demoEntityTypes[seed%uint64(len(demoEntityTypes))]
	id := int64(demoBaseID + seed%demoIDRange)

	today := g.now().UTC().Truncate(24 * time.Hour)
	created := tgutils.EstimateCreationDate(id)

	info := &models.ProfileInfo{
		EntityType:     entityType,
		Name:           fmt.Sprintf("Demo %s - %s", entityType, titleWords(handle)),
		Username:       NormalizeUsername(&handle),
		ID:             models.KnownNumber(id),
		Premium:        seed%3 == 0,
		Verified:       seed%2 == 0,
		Scam:           false,
		Fake:           false,
		DataCenter:     models.DataCenterUnknown,
		Status:         demoStatuses[seed%uint64(len(demoStatuses))],
		AccountCreated: tgutils.FormatCreationDate(created),
		Age:            tgutils.FormatAge(created, today),
		DemoMode:       true,
		Message:        models.DemoDisclaimer,
	}

	if entityType.HasMembership() {
		info.Membership = &models.Membership{
			MembersCount: models.KnownNumber(int64(seed%10000) + 1000),
			Admins: []models.Admin{
				{Name: "Admin One", Username: "@admin1"},
				{Name: "Admin Two", Username: "@admin2"},
			},
		}
	}

	return info
}

// titleWords capitalizes every run of letters, so digits and underscores
// start a new word: "test_user9x" becomes "Test_User9X".
func titleWords(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(s))

	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}
