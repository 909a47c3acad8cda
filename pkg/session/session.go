// Package session issues and parses the explicit session value handed to
// callers of the facades after a successful login. Sessions travel as RS256
// signed JWTs; nothing about the current session is kept in process state.
package session

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"registry/pkg/domain"
	"registry/pkg/serrors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session identifies an authenticated user.
type Session struct {
	UserID    domain.UsuarioID
	RoleID    domain.RolID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type claims struct {
	jwt.RegisteredClaims
	RoleID int64  `json:"rol"`
	Email  string `json:"email"`
}

// Manager signs and verifies session tokens.
type Manager struct {
	key    *rsa.PrivateKey
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

type Options struct {
	// PrivateKey is a PEM encoded RSA private key (PKCS#1 or PKCS#8).
	PrivateKey string
	Issuer     string
	TTL        time.Duration
}

func New(options Options) (*Manager, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	if options.TTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	return &Manager{
		key:    key,
		issuer: options.Issuer,
		ttl:    options.TTL,
		now:    time.Now,
	}, nil
}

// Issue starts a session for u and returns it with its signed token.
func (m *Manager) Issue(u *domain.Usuario) (Session, string, error) {
	now := m.now().UTC().Truncate(time.Second)
	s := Session{
		UserID:    u.ID(),
		RoleID:    u.RoleID(),
		Email:     u.Email().String(),
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(int64(s.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
			NotBefore: jwt.NewNumericDate(s.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
		RoleID: int64(s.RoleID),
		Email:  s.Email,
	})
	signed, err := token.SignedString(m.key)
	if err != nil {
		return Session{}, "", fmt.Errorf("could not sign session token: %w", err)
	}

	return s, signed, nil
}

// Parse verifies token and returns the session it carries. Every failure is
// an ErrUnauthorized error.
func (m *Manager) Parse(token string) (Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return &m.key.PublicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Session{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Session{}, serrors.With(serrors.ErrUnauthorized, "invalid session subject")
	}

	return Session{
		UserID:    domain.UsuarioID(id),
		RoleID:    domain.RolID(c.RoleID),
		Email:     c.Email,
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// TTL returns the lifetime of issued sessions.
func (m *Manager) TTL() time.Duration { return m.ttl }
