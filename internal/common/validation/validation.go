package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const MaxUsernameLength = 32

// Public usernames only contain latin letters, digits and underscores.
// Length is only capped from above: short collectible names exist.
var usernameCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername reports why handle can never resolve as a public username.
// The handle is expected without the leading "@".
func ValidateUsername(handle string) error {
	if handle == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if n := utf8.RuneCountInString(handle); n > MaxUsernameLength {
		return fmt.Errorf("username cannot be longer than %d characters, got %d", MaxUsernameLength, n)
	}
	if !usernameCharsRegex.MatchString(handle) {
		return fmt.Errorf("username can only contain letters, digits and underscores")
	}
	return nil
}
