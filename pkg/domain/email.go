package domain

import (
	"regexp"
	"strings"

	"registry/pkg/serrors"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a normalized (trimmed, lower-cased) e-mail address.
type Email struct {
	value string
}

// NewEmail validates and normalizes raw.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, serrors.Invalid(serrors.ErrInvalidFormat, "email", "email is required")
	}
	if !emailRe.MatchString(v) {
		return Email{}, serrors.Invalid(serrors.ErrInvalidFormat, "email", "email %q is not a valid address", v)
	}

	return Email{value: v}, nil
}

// String returns the normalized address.
func (e Email) String() string { return e.value }

// IsZero reports whether e was never built.
func (e Email) IsZero() bool { return e.value == "" }
