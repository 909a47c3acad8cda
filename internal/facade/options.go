package facade

import (
	"fmt"
	"registry/internal/config"
	"registry/internal/service"
	"registry/pkg/domain"
	"registry/pkg/metrics"
	"registry/pkg/session"
	"time"
)

// Services groups the services the facades orchestrate.
type Services struct {
	Usuarios service.UsuarioService
	Perfiles service.PerfilUsuarioService
	Roles    service.RolService
}

// SessionIssuer signs a session for an authenticated user. *session.Manager
// implements it.
type SessionIssuer interface {
	Issue(u *domain.Usuario) (session.Session, string, error)
}

type Options struct {
	// DefaultBirthDate is used when a registration carries no birth date.
	DefaultBirthDate time.Time
	// DefaultSexID is assigned to profiles created at registration.
	DefaultSexID domain.SexID
	// Metrics records every facade call. Nil disables recording.
	Metrics *metrics.Operations
	// Now is the clock birth dates are checked against.
	Now func() time.Time
}

func NewOptions(cfg *config.Config, ops *metrics.Operations) (Options, error) {
	birth, err := cfg.DefaultBirthDate()
	if err != nil {
		return Options{}, fmt.Errorf("could not build facade options: %w", err)
	}

	return Options{
		DefaultBirthDate: birth,
		DefaultSexID:     domain.SexID(cfg.Registration.DefaultSexID),
		Metrics:          ops,
		Now:              time.Now,
	}, nil
}

func (o Options) today() time.Time {
	now := time.Now()
	if o.Now != nil {
		now = o.Now()
	}

	return domain.Today(now)
}
