package validate

import (
	"regexp"
	"strings"

	"eventbooking/internal/domain"
)

// emailPattern is a permissive local@domain.tld shape: no whitespace,
// exactly one @, at least one dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email trims and lowercases a raw email address and validates its shape.
func Email(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(v) {
		return "", &domain.ValidationError{Field: "email", Reason: "invalid address"}
	}
	return v, nil
}
