package domain

import (
	"time"

	"registry/pkg/serrors"
)

// UsuarioID identifies a user; it is assigned by the store on creation.
type UsuarioID int64

// Usuario is a registered account. It owns its Email and Password value
// objects and references its role by id only.
type Usuario struct {
	id             UsuarioID
	email          Email
	password       Password
	roleID         RolID
	verified       bool
	lastConnection *time.Time
	createdAt      time.Time
}

// NewUsuario builds an unsaved user.
func NewUsuario(email Email, password Password, roleID RolID) (*Usuario, error) {
	if email.IsZero() {
		return nil, serrors.Invalid(serrors.ErrValidation, "email", "email is required")
	}
	if password.Hash() == "" {
		return nil, serrors.Invalid(serrors.ErrValidation, "password", "password is required")
	}
	if roleID <= 0 {
		return nil, serrors.Invalid(serrors.ErrValidation, "roleId", "role is required")
	}

	return &Usuario{email: email, password: password, roleID: roleID}, nil
}

// RestoreUsuario rebuilds a persisted user. It is meant for storage adapters.
func RestoreUsuario(id UsuarioID,
	email Email,
	password Password,
	roleID RolID,
	verified bool,
	lastConnection *time.Time,
	createdAt time.Time) *Usuario {
	return &Usuario{
		id:             id,
		email:          email,
		password:       password,
		roleID:         roleID,
		verified:       verified,
		lastConnection: lastConnection,
		createdAt:      createdAt,
	}
}

func (u *Usuario) ID() UsuarioID        { return u.id }
func (u *Usuario) Email() Email         { return u.email }
func (u *Usuario) Password() Password   { return u.password }
func (u *Usuario) RoleID() RolID        { return u.roleID }
func (u *Usuario) Verified() bool       { return u.verified }
func (u *Usuario) CreatedAt() time.Time { return u.createdAt }
func (u *Usuario) LastConnection() *time.Time {
	if u.lastConnection == nil {
		return nil
	}
	t := *u.lastConnection

	return &t
}

// MarkVerified flips the verified flag. There is no way back.
func (u *Usuario) MarkVerified() { u.verified = true }

// Touch records a successful authentication at now.
func (u *Usuario) Touch(now time.Time) {
	t := now.UTC()
	u.lastConnection = &t
}
