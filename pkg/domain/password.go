package domain

import (
	"unicode"
	"unicode/utf8"

	"registry/pkg/serrors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum number of runes a password must have.
const MinPasswordLength = 8

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// Password holds a bcrypt hash; the plaintext is never retained.
type Password struct {
	hash string
}

// hashCost is a variable so tests can lower the bcrypt cost.
var hashCost = bcrypt.DefaultCost //nolint: gochecknoglobals

// NewPassword checks plain against the password policy and hashes it.
// The policy requires MinPasswordLength runes, at most MaxPasswordBytes bytes
// and at least one upper-case letter, one lower-case letter and one digit.
func NewPassword(plain string) (Password, error) {
	if err := CheckPasswordPolicy(plain); err != nil {
		return Password{}, err
	}

	h, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return Password{}, serrors.Infra(err, "could not hash password")
	}

	return Password{hash: string(h)}, nil
}

// PasswordFromHash rebuilds a Password from its stored hash.
func PasswordFromHash(hash string) (Password, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return Password{}, serrors.Wrap(serrors.ErrInvalidFormat, err, "stored password hash is malformed")
	}

	return Password{hash: hash}, nil
}

// CheckPasswordPolicy returns an ErrWeakPassword error when plain does not
// satisfy the policy.
func CheckPasswordPolicy(plain string) error {
	if utf8.RuneCountInString(plain) < MinPasswordLength {
		return serrors.Invalid(serrors.ErrWeakPassword, "password",
			"password must be at least %d characters long", MinPasswordLength)
	}
	if len(plain) > MaxPasswordBytes {
		return serrors.Invalid(serrors.ErrWeakPassword, "password",
			"password must be at most %d bytes", MaxPasswordBytes)
	}

	var upper, lower, digit bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return serrors.Invalid(serrors.ErrWeakPassword, "password",
			"password must contain upper-case, lower-case and numeric characters")
	}

	return nil
}

// Verify reports whether plain matches the stored hash.
func (p Password) Verify(plain string) bool {
	if p.hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

// Hash returns the stored hash.
func (p Password) Hash() string { return p.hash }
