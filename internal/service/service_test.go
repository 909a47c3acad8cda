package service_test

import (
	"registry/internal/service"
	"registry/pkg/domain"
	mockfiles "registry/pkg/files/mock"
	mockstorage "registry/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC) //nolint: gochecknoglobals

type deps struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	files   *mockfiles.MockStorage
	roles   service.RolService
	users   service.UsuarioService
	perfils service.PerfilUsuarioService
}

func newDeps(t *testing.T) deps {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	fs := mockfiles.NewMockStorage(ctrl)
	opts := service.Options{
		DefaultRole:           "usuario",
		RoleCacheTTL:          time.Minute,
		OrphanFileMaxAttempts: 5,
		Now:                   func() time.Time { return fixedNow },
	}
	roles := service.NewRolService(st, opts)

	return deps{
		ctrl:    ctrl,
		storage: st,
		files:   fs,
		roles:   roles,
		users:   service.NewUsuarioService(st, roles, opts),
		perfils: service.NewPerfilUsuarioService(st, fs, opts),
	}
}

func mustRol(t *testing.T, id domain.RolID, name string) *domain.Rol {
	t.Helper()
	r, err := domain.NewRol(id, name)
	require.NoError(t, err)

	return &r
}

func mustEmail(t *testing.T, s string) domain.Email {
	t.Helper()
	e, err := domain.NewEmail(s)
	require.NoError(t, err)

	return e
}

func mustPassword(t *testing.T, s string) domain.Password {
	t.Helper()
	p, err := domain.NewPassword(s)
	require.NoError(t, err)

	return p
}

func ptr[T any](v T) *T { return &v }

func perfilFields(t *testing.T, userID domain.UsuarioID) domain.PerfilFields {
	t.Helper()

	return domain.PerfilFields{
		UserID:    userID,
		SexID:     1,
		Name:      "Ana",
		Surname:   "Gómez",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:     mustEmail(t, "user@example.com"),
	}
}

func storedPerfil(t *testing.T, id domain.PerfilID, f domain.PerfilFields) *domain.PerfilUsuario {
	t.Helper()
	p, err := domain.NewPerfilUsuario(f)
	require.NoError(t, err)

	return domain.RestorePerfilUsuario(id, p.Fields(), false, fixedNow, time.Time{})
}

// withID mimics a store assigning an id to a new profile.
func withID(id domain.PerfilID) func(_ any, p *domain.PerfilUsuario) (*domain.PerfilUsuario, error) {
	return func(_ any, p *domain.PerfilUsuario) (*domain.PerfilUsuario, error) {
		return domain.RestorePerfilUsuario(id, p.Fields(), p.Verified(), fixedNow, time.Time{}), nil
	}
}

// echoPerfil mimics an update returning the persisted row.
func echoPerfil(_ any, p *domain.PerfilUsuario) (*domain.PerfilUsuario, error) {
	return domain.RestorePerfilUsuario(p.ID(), p.Fields(), p.Verified(), p.CreatedAt(), fixedNow), nil
}
