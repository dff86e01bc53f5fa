package domain

import (
	"fmt"
	"regexp"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]{3,64}$`)

// ValidateUsername checks that an admin username is present and well-formed.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-64 characters (letters, digits, _ - .)")
	}
	return nil
}
