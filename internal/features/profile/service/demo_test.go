package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tg-info-backend/internal/features/profile/models"
)

func TestDemoGenerator_Deterministic(t *testing.T) {
	g := NewDemoGenerator(fixedClock)

	for _, handle := range []string{"testuser", "durov", "telegram", "a", "some_long_handle_123"} {
		first, err := json.Marshal(g.Generate(handle))
		require.NoError(t, err)
		second, err := json.Marshal(g.Generate(handle))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), handle)
	}
}

func TestDemoGenerator_SameDayIsStable(t *testing.T) {
	morning := NewDemoGenerator(func() time.Time { return time.Date(2025, 6, 15, 0, 5, 0, 0, time.UTC) })
	evening := NewDemoGenerator(func() time.Time { return time.Date(2025, 6, 15, 23, 55, 0, 0, time.UTC) })

	a, err := json.Marshal(morning.Generate("durov"))
	require.NoError(t, err)
	b, err := json.Marshal(evening.Generate("durov"))
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestDemoGenerator_Fields(t *testing.T) {
	g := NewDemoGenerator(fixedClock)

	for i := 0; i < 200; i++ {
		handle := fmt.Sprintf("handle%d", i)
		seed := xxhash.Sum64String(handle)
		info := g.Generate(handle)

		assert.True(t, info.DemoMode)
		assert.Equal(t, models.DemoDisclaimer, info.Message)
		assert.Equal(t, "@"+handle, info.Username)
		assert.Equal(t, seed%3 == 0, info.Premium)
		assert.Equal(t, seed%2 == 0, info.Verified)
		assert.False(t, info.Scam)
		assert.False(t, info.Fake)
		assert.Empty(t, info.ProfilePicURL)
		assert.Equal(t, demoEntityTypes[seed%4], info.EntityType)
		assert.True(t, strings.HasPrefix(info.Name, "Demo "+string(info.EntityType)+" - "))

		require.True(t, info.ID.Valid)
		assert.GreaterOrEqual(t, info.ID.Value, int64(100_000_000))
		assert.Less(t, info.ID.Value, int64(500_000_000))

		assert.Equal(t, info.EntityType.HasMembership(), info.Membership != nil, handle)
		if info.Membership != nil {
			assert.Len(t, info.Admins, 2)
			assert.GreaterOrEqual(t, info.MembersCount.Value, int64(1000))
			assert.Less(t, info.MembersCount.Value, int64(11000))
		}
	}
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"testuser", "Testuser"},
		{"test_user9x", "Test_User9X"},
		{"DUROV", "Durov"},
		{"some_long_handle_123", "Some_Long_Handle_123"},
		{"a1b2", "A1B2"},
		{"42", "42"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleWords(tt.in), tt.in)
	}
}

func TestDemoGenerator_NameTitleCasesEachWord(t *testing.T) {
	info := NewDemoGenerator(fixedClock).Generate("test_user9x")
	assert.Equal(t, "Demo "+string(info.EntityType)+" - Test_User9X", info.Name)
}

func TestDemoGenerator_StripsAt(t *testing.T) {
	g := NewDemoGenerator(fixedClock)
	assert.Equal(t, g.Generate("testuser"), g.Generate("@testuser"))
}

func TestDemoGenerator_AgeMatchesCreation(t *testing.T) {
	g := NewDemoGenerator(fixedClock)
	info := g.Generate("durov")

	created, err := time.Parse("Jan 02, 2006", info.AccountCreated)
	require.NoError(t, err)
	assert.False(t, created.Before(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Regexp(t, `^\d+ years, \d+ months, \d+ days$`, info.Age)
}
