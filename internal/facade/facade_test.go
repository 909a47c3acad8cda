package facade_test

import (
	"context"
	"registry/internal/facade"
	mockservice "registry/internal/service/mock"
	"registry/pkg/domain"
	"registry/pkg/metrics"
	"registry/pkg/storage"
	mockstorage "registry/pkg/storage/mock"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC) //nolint: gochecknoglobals

type deps struct {
	storage  *mockstorage.MockStorage
	tx       *mockstorage.MockAllStorage
	usuarios *mockservice.MockUsuarioService
	perfiles *mockservice.MockPerfilUsuarioService
	roles    *mockservice.MockRolService
	registry *prometheus.Registry
	options  facade.Options
}

func newDeps(t *testing.T) deps {
	t.Helper()

	ctrl := gomock.NewController(t)
	reg := prometheus.NewRegistry()
	ops, err := metrics.NewOperations(reg)
	require.NoError(t, err)

	return deps{
		storage:  mockstorage.NewMockStorage(ctrl),
		tx:       mockstorage.NewMockAllStorage(ctrl),
		usuarios: mockservice.NewMockUsuarioService(ctrl),
		perfiles: mockservice.NewMockPerfilUsuarioService(ctrl),
		roles:    mockservice.NewMockRolService(ctrl),
		registry: reg,
		options: facade.Options{
			DefaultBirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			DefaultSexID:     1,
			Metrics:          ops,
			Now:              func() time.Time { return fixedNow },
		},
	}
}

func (d deps) services() facade.Services {
	return facade.Services{Usuarios: d.usuarios, Perfiles: d.perfiles, Roles: d.roles}
}

func (d deps) auth(sessions facade.SessionIssuer) facade.AuthFacade {
	return facade.NewAuthFacade(d.storage, d.services(), sessions, d.options)
}

func (d deps) perfil() facade.PerfilFacade {
	return facade.NewPerfilFacade(d.storage, d.services(), d.options)
}

// expectTx makes the storage run the unit of work on d.tx and return
// commitErr, or the work's error when it fails.
func (d deps) expectTx(commitErr error) {
	d.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			if err := cb(d.tx); err != nil {
				return err
			}

			return commitErr
		})
}

func mustEmail(t *testing.T, s string) domain.Email {
	t.Helper()
	e, err := domain.NewEmail(s)
	require.NoError(t, err)

	return e
}

func mustRol(t *testing.T) *domain.Rol {
	t.Helper()
	r, err := domain.NewRol(2, "usuario")
	require.NoError(t, err)

	return &r
}

func usuario(t *testing.T, id domain.UsuarioID, email string) *domain.Usuario {
	t.Helper()

	return domain.RestoreUsuario(id, mustEmail(t, email), domain.Password{}, 2, true, nil, fixedNow)
}

func perfil(t *testing.T, id domain.PerfilID, userID domain.UsuarioID) *domain.PerfilUsuario {
	t.Helper()
	p, err := domain.NewPerfilUsuario(domain.PerfilFields{
		UserID:    userID,
		SexID:     1,
		Name:      "Ana",
		Surname:   "Gómez",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:     mustEmail(t, "user@example.com"),
	})
	require.NoError(t, err)

	return domain.RestorePerfilUsuario(id, p.Fields(), false, fixedNow, time.Time{})
}

func ptr[T any](v T) *T { return &v }

// operations returns the registry_operations_total counter for the labels.
func operations(t *testing.T, d deps, op, outcome, code string) float64 {
	t.Helper()

	families, err := d.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "registry_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["operation"] == op && labels["outcome"] == outcome && labels["code"] == code {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}
