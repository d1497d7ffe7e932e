package common

import (
	"fmt"
	"net/mail"
	"strings"
)

// ParseEmail lowercases and validates an address. Blank input yields "".
func ParseEmail(field, value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", nil
	}
	parsed, err := mail.ParseAddress(value)
	if err != nil || parsed.Address != value {
		return "", fmt.Errorf("%w: invalid %s %q", ErrInvalidInput, field, value)
	}
	return value, nil
}
