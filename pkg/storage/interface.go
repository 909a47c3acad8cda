// Package storage defines the repository ports the registry relies on. Every
// port is offered in two forms: the ambient Storage, where each call runs on
// its own short-lived connection, and the scoped AllStorage handed to a
// WithTx callback, where every call joins the caller's transaction.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"registry/pkg/domain"

	"github.com/riverqueue/river"
)

// AllStorage is a composite interface that includes all entity-specific
// storage capabilities.
type AllStorage interface {
	// StoreUsuario inserts u and returns it with the store-assigned id.
	StoreUsuario(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error)
	// UpdateUsuario persists verified and last connection of u. It returns nil
	// when no such user exists.
	UpdateUsuario(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error)
	// UsuarioByID returns nil when not found.
	UsuarioByID(ctx context.Context, id domain.UsuarioID) (*domain.Usuario, error)
	// UsuarioByEmail returns nil when not found.
	UsuarioByEmail(ctx context.Context, email domain.Email) (*domain.Usuario, error)

	// StorePerfil inserts p and returns it with the store-assigned id.
	StorePerfil(ctx context.Context, p *domain.PerfilUsuario) (*domain.PerfilUsuario, error)
	// UpdatePerfil replaces every mutable column of p. It returns nil when no
	// such profile exists.
	UpdatePerfil(ctx context.Context, p *domain.PerfilUsuario) (*domain.PerfilUsuario, error)
	// PerfilByID returns nil when not found.
	PerfilByID(ctx context.Context, id domain.PerfilID) (*domain.PerfilUsuario, error)
	// PerfilByUserID returns nil when the user has no profile.
	PerfilByUserID(ctx context.Context, userID domain.UsuarioID) (*domain.PerfilUsuario, error)
	// PerfilByDNI returns nil when no profile has dni.
	PerfilByDNI(ctx context.Context, dni string) (*domain.PerfilUsuario, error)

	// RolByID returns nil when not found.
	RolByID(ctx context.Context, id domain.RolID) (*domain.Rol, error)
	// RolByName returns nil when not found.
	RolByName(ctx context.Context, name string) (*domain.Rol, error)
	// Roles lists the role catalog ordered by id.
	Roles(ctx context.Context) ([]domain.Rol, error)

	// StoreImage inserts img and returns it with the store-assigned id.
	StoreImage(ctx context.Context, img domain.Image) (*domain.Image, error)
	// ImageByID returns nil when not found.
	ImageByID(ctx context.Context, id domain.ImageID) (*domain.Image, error)
	// DeleteImage removes the row and reports whether it existed.
	DeleteImage(ctx context.Context, id domain.ImageID) (bool, error)

	// AddJob enqueues a background job. Inside a transaction the job only
	// becomes visible once the transaction commits.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// TxStorage is a storage handle bound to a database transaction.
// Implementations become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is the ambient (non-transactional) storage handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with the transactional handle,
	// then commits when cb returns nil or rolls back otherwise. The error
	// returned by cb is passed through unchanged.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
