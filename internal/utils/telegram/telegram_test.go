package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCreationDate(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want time.Time
	}{
		{"below base clamps", 777000, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"negative id clamps", -1001234567890, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"exact base", 100_000_000, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"one day", 100_100_000, time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"partial day floors", 100_199_999, time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"365 days", 136_500_000, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateCreationDate(tt.id))
		})
	}
}

func TestFormatAge(t *testing.T) {
	created := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "0 years, 0 months, 0 days", FormatAge(created, created))
	assert.Equal(t, "1 years, 0 months, 0 days", FormatAge(created, created.AddDate(0, 0, 365)))
	assert.Equal(t, "1 years, 1 months, 5 days", FormatAge(created, created.AddDate(0, 0, 400)))
	assert.Equal(t, "0 years, 0 months, 0 days", FormatAge(created, created.AddDate(0, 0, -10)))
	assert.Equal(t, "0 years, 0 months, 0 days", FormatAge(created, created.Add(23*time.Hour)))
}

func TestFormatCreationDate(t *testing.T) {
	assert.Equal(t, "Mar 05, 2019", FormatCreationDate(time.Date(2019, 3, 5, 12, 0, 0, 0, time.UTC)))
}

func TestPhotoFilename(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "42_1700000000123.jpg", PhotoFilename(42, at))
	assert.Equal(t, "-1001_1700000000123.jpg", PhotoFilename(-1001, at))
}

func TestBuildPhotoURL(t *testing.T) {
	assert.Equal(t, "/static/photos/1_2.jpg", BuildPhotoURL("/static/photos", "1_2.jpg"))
	assert.Equal(t, "/static/photos/1_2.jpg", BuildPhotoURL("static/photos/", "1_2.jpg"))
	assert.Equal(t, "", BuildPhotoURL("/static/photos", ""))
}
