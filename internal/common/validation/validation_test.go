package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		handle  string
		wantErr bool
	}{
		{"regular", "durov", false},
		{"short collectible", "x", false},
		{"digits and underscore", "news_24", false},
		{"max length", strings.Repeat("a", MaxUsernameLength), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxUsernameLength+1), true},
		{"space", "two words", true},
		{"link", "t.me/durov", true},
		{"cyrillic", "привет", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.handle)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
