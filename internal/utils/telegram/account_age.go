package telegram

import (
	"fmt"
	"time"
)

const (
	// Ids at or below this map to the base date.
	estimateBaseID    int64 = 100_000_000
	estimateIDsPerDay int64 = 100_000

	CreationDateLayout = "Jan 02, 2006"
)

var estimateBaseDate = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

// EstimateCreationDate maps an entity id onto an approximate registration
// date with a fixed linear rule. The result is a heuristic, not platform data.
func EstimateCreationDate(id int64) time.Time {
	days := (id - estimateBaseID) / estimateIDsPerDay
	if days < 0 {
		days = 0
	}
	return estimateBaseDate.AddDate(0, 0, int(days))
}

// FormatAge renders the time between created and now as
// "X years, Y months, Z days" using 365-day years and 30-day months.
// A created date after now yields zero.
func FormatAge(created, now time.Time) string {
	days := int(now.Sub(created).Hours() / 24)
	if days < 0 {
		days = 0
	}
	years := days / 365
	months := (days % 365) / 30
	rest := (days % 365) % 30
	return fmt.Sprintf("%d years, %d months, %d days", years, months, rest)
}

// FormatCreationDate renders a creation date like "Jan 02, 2006".
func FormatCreationDate(t time.Time) string {
	return t.Format(CreationDateLayout)
}
