package facade_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	root "registry"
	"registry/internal/facade"
	"registry/internal/service"
	"registry/pkg/files"
	"registry/pkg/files/local"
	"registry/pkg/result"
	"registry/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// system is the registry wired on a real postgres and the local file storage.
type system struct {
	pg       *postgres.PgSQL
	files    files.Storage
	services facade.Services
	auth     facade.AuthFacade
	perfil   facade.PerfilFacade
}

func startSystem(t *testing.T) *system {
	t.Helper()
	if testing.Short() {
		t.Skip("needs docker")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "registry",
			},
			WaitingFor: wait.ForListeningPort("5432"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           "postgres",
		Password:           "postgres",
		Host:               host,
		Port:               port.Int(),
		Database:           "registry",
		SslMode:            "disable",
		MaxOpenConnections: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })
	require.NoError(t, migrate(ctx, pg.DB.(*sql.DB)))

	fileStorage, err := local.New(t.TempDir())
	require.NoError(t, err)

	return newSystem(pg, fileStorage)
}

func newSystem(pg *postgres.PgSQL, fileStorage files.Storage) *system {
	serviceOptions := service.Options{
		DefaultRole:           "usuario",
		RoleCacheTTL:          time.Minute,
		OrphanFileMaxAttempts: 3,
	}
	roles := service.NewRolService(pg, serviceOptions)
	services := facade.Services{
		Usuarios: service.NewUsuarioService(pg, roles, serviceOptions),
		Perfiles: service.NewPerfilUsuarioService(pg, fileStorage, serviceOptions),
		Roles:    roles,
	}
	options := facade.Options{
		DefaultBirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		DefaultSexID:     1,
	}

	return &system{
		pg:       pg,
		files:    fileStorage,
		services: services,
		auth:     facade.NewAuthFacade(pg, services, nil, options),
		perfil:   facade.NewPerfilFacade(pg, services, options),
	}
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return fmt.Errorf("could not run river migrations: %w", err)
	}

	return nil
}

func (s *system) count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, s.pg.DB.(*sql.DB).QueryRowContext(context.Background(), query, args...).Scan(&n))

	return n
}

func registro(email string) facade.RegistroRequest {
	return facade.RegistroRequest{
		Email:           email,
		Password:        "Str0ngPass!",
		ConfirmPassword: "Str0ngPass!",
		Name:            "Ana",
		Surname:         "Gómez",
	}
}

func mustOK[T any](t *testing.T, res result.Result[T]) T {
	t.Helper()
	require.True(t, res.IsSuccess(), "%v", res.Errors())
	data, ok := res.Data()
	require.True(t, ok)

	return data
}

func TestIntegration_ExampleScenario(t *testing.T) {
	s := startSystem(t)
	ctx := context.Background()

	u := mustOK(t, s.auth.RegistrarUsuario(ctx, registro("user@example.com")))
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, "usuario", u.RoleName)
	require.True(t, u.Verified)
	require.NotNil(t, u.Perfil)
	require.Equal(t, "2000-01-01", u.Perfil.BirthDate)
	require.Nil(t, u.Perfil.DNI)

	again := s.auth.RegistrarUsuario(ctx, registro("user@example.com"))
	require.False(t, again.IsSuccess())
	require.Equal(t, []result.ErrorRecord{{
		Code:    result.CodeDuplicate,
		Message: "email is already registered",
		Field:   "email",
	}}, again.Errors())
	require.Equal(t, 1, s.count(t, "SELECT count(*) FROM usuarios"))
}

func TestIntegration_RegistrationIsAtomic(t *testing.T) {
	s := startSystem(t)
	ctx := context.Background()

	// a sex id the profile rejects makes the second write of the unit of work fail
	broken := *s
	broken.auth = facade.NewAuthFacade(s.pg, s.services, nil, facade.Options{
		DefaultBirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	res := broken.auth.RegistrarUsuario(ctx, registro("atomic@example.com"))
	require.False(t, res.IsSuccess())
	require.Zero(t, s.count(t, "SELECT count(*) FROM usuarios WHERE email = $1", "atomic@example.com"))

	mustOK(t, s.auth.RegistrarUsuario(ctx, registro("atomic@example.com")))
}

func TestIntegration_ExhaustiveValidation(t *testing.T) {
	s := startSystem(t)

	req := registro("not-an-email")
	req.Surname = " "

	res := s.auth.RegistrarUsuario(context.Background(), req)
	require.False(t, res.IsSuccess())
	require.Len(t, res.Errors(), 2)
	require.Zero(t, s.count(t, "SELECT count(*) FROM usuarios"))
}

func TestIntegration_LoginOpacity(t *testing.T) {
	s := startSystem(t)
	ctx := context.Background()
	mustOK(t, s.auth.RegistrarUsuario(ctx, registro("login@example.com")))

	session := mustOK(t, s.auth.IniciarSesion(ctx, facade.LoginRequest{Email: "login@example.com", Password: "Str0ngPass!"}))
	require.NotNil(t, session.Usuario.LastConnection)
	require.Empty(t, session.Token)

	unknown := s.auth.IniciarSesion(ctx, facade.LoginRequest{Email: "nobody@example.com", Password: "Str0ngPass!"})
	wrong := s.auth.IniciarSesion(ctx, facade.LoginRequest{Email: "login@example.com", Password: "Wr0ngPass!"})
	require.False(t, unknown.IsSuccess())
	require.Equal(t, unknown.Errors(), wrong.Errors())
}

func TestIntegration_NullDNIIsNotDuplicate(t *testing.T) {
	s := startSystem(t)
	ctx := context.Background()

	perfilFor := func(email string, dni *string) result.Result[facade.PerfilView] {
		u, err := s.services.Usuarios.RegistrarUsuario(ctx, email, "Str0ngPass!")
		require.NoError(t, err)

		return s.perfil.CrearPerfil(ctx, facade.PerfilRequest{
			UserID:    int64(u.ID()),
			SexID:     1,
			DNI:       dni,
			Name:      "Ana",
			Surname:   "Gómez",
			BirthDate: "1990-05-17",
			Email:     email,
		})
	}

	mustOK(t, perfilFor("a@example.com", nil))
	mustOK(t, perfilFor("b@example.com", nil))
	mustOK(t, perfilFor("c@example.com", ptr("30111222")))

	dup := perfilFor("d@example.com", ptr("30111222"))
	require.False(t, dup.IsSuccess())
	first, _ := dup.FirstError()
	require.Equal(t, result.CodeDuplicate, first.Code)
	require.Equal(t, "dni", first.Field)
}

// failingSave wraps a storage whose writes fail.
type failingSave struct {
	files.Storage
}

func (failingSave) Save(context.Context, files.Kind, int64, string, []byte) (string, error) {
	return "", errors.New("disk full")
}

func TestIntegration_PhotoReplace(t *testing.T) {
	s := startSystem(t)
	ctx := context.Background()

	u := mustOK(t, s.auth.RegistrarUsuario(ctx, registro("photo@example.com")))
	req := facade.PerfilRequest{
		ID:        u.Perfil.ID,
		SexID:     1,
		Name:      "Ana",
		Surname:   "Gómez",
		BirthDate: "2000-01-01",
		Email:     "photo@example.com",
	}

	first := mustOK(t, s.perfil.ActualizarPerfilConFoto(ctx, req, []byte("first"), "me.png"))
	require.NotNil(t, first.PhotoImageID)
	var firstLink string
	require.NoError(t, s.pg.DB.(*sql.DB).QueryRowContext(ctx,
		"SELECT link FROM images WHERE id = $1", *first.PhotoImageID).Scan(&firstLink))

	second := mustOK(t, s.perfil.ActualizarPerfilConFoto(ctx, req, []byte("second"), "me.png"))
	require.NotEqual(t, *first.PhotoImageID, *second.PhotoImageID)
	require.Equal(t, 1, s.count(t, "SELECT count(*) FROM images"))
	require.Equal(t, 1, s.count(t, "SELECT count(*) FROM perfiles_usuario WHERE photo_image_id = $1", *second.PhotoImageID))
	exists, err := s.files.Exists(ctx, firstLink)
	require.NoError(t, err)
	require.False(t, exists)

	// without a photo the current one is kept
	kept := mustOK(t, s.perfil.ActualizarPerfilConFoto(ctx, req, nil, ""))
	require.Equal(t, *second.PhotoImageID, *kept.PhotoImageID)

	// a failed write leaves the profile and the images untouched
	failing := newSystem(s.pg, failingSave{Storage: s.files})
	res := failing.perfil.ActualizarPerfilConFoto(ctx, req, []byte("third"), "me.png")
	require.False(t, res.IsSuccess())

	after := mustOK(t, s.perfil.ObtenerPerfilPorUsuario(ctx, u.ID))
	require.Equal(t, *second.PhotoImageID, *after.PhotoImageID)
	require.Equal(t, 1, s.count(t, "SELECT count(*) FROM images"))
}
