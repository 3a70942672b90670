package quiz

import (
	"regexp"
	"strings"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/store"
)

const MinUsernameLength = 3

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Substrings that are refused even though the pattern allows them.
var reservedFragments = []string{"--", "DROP", "SELECT", "INSERT", "DELETE", "UPDATE"}

// ValidateUsername checks a name typed by a player and returns it trimmed.
func ValidateUsername(username string) (string, error) {
	name := strings.TrimSpace(username)
	switch {
	case name == "":
		return "", apperr.Validation("username", "cannot be empty")
	case len(name) < MinUsernameLength:
		return "", apperr.Validation("username", "must be at least %d characters long", MinUsernameLength)
	case len(name) > store.MaxUsernameLength:
		return "", apperr.Validation("username", "must be at most %d characters long", store.MaxUsernameLength)
	case !usernamePattern.MatchString(name):
		return "", apperr.Validation("username", "can only contain letters, numbers, underscores and hyphens")
	}
	upper := strings.ToUpper(name)
	for _, frag := range reservedFragments {
		if strings.Contains(upper, frag) {
			return "", apperr.Validation("username", "contains a reserved word")
		}
	}
	return name, nil
}
