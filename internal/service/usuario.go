package service

import (
	"context"
	"fmt"
	"registry/pkg/domain"
	"registry/pkg/logger"
	"registry/pkg/serrors"
	"registry/pkg/storage"

	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned by IniciarSesion for an unknown email and
// for a wrong password alike.
var ErrInvalidCredentials = serrors.With(serrors.ErrNotFound, "invalid email or password") //nolint: gochecknoglobals

type usuarioService struct {
	options Options
	storage storage.Storage
	roles   RolService
}

// RegistrarUsuario creates a verified user with the default role. It fails
// with a duplicate error when the email is already registered.
func (s *usuarioService) RegistrarUsuario(ctx context.Context, email, password string) (*domain.Usuario, error) {
	u, err := s.newUsuario(ctx, email, password)
	if err != nil {
		return nil, err
	}

	existing, err := s.storage.UsuarioByEmail(ctx, u.Email())
	if err != nil {
		return nil, fmt.Errorf("could not check email: %w", err)
	}
	if existing != nil {
		return nil, serrors.Duplicate("usuario", u.Email(), "email")
	}

	stored, err := s.storage.StoreUsuario(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("could not store usuario: %w", err)
	}

	return stored, nil
}

// RegistrarUsuarioTx is RegistrarUsuario inside the caller's transaction. The
// email pre-check is skipped; the store's unique constraint reports the same
// duplicate error.
func (s *usuarioService) RegistrarUsuarioTx(ctx context.Context,
	tx storage.AllStorage,
	email, password string) (*domain.Usuario, error) {
	u, err := s.newUsuario(ctx, email, password)
	if err != nil {
		return nil, err
	}

	stored, err := tx.StoreUsuario(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("could not store usuario: %w", err)
	}

	return stored, nil
}

func (s *usuarioService) newUsuario(ctx context.Context, email, password string) (*domain.Usuario, error) {
	e, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}
	pw, err := domain.NewPassword(password)
	if err != nil {
		return nil, err
	}

	rol, err := s.roles.RolPorDefecto(ctx)
	if err != nil {
		return nil, err
	}

	u, err := domain.NewUsuario(e, pw, rol.ID())
	if err != nil {
		return nil, err
	}
	u.MarkVerified()

	return u, nil
}

// IniciarSesion authenticates and stamps the last connection.
func (s *usuarioService) IniciarSesion(ctx context.Context, email, password string) (*domain.Usuario, error) {
	e, err := domain.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.storage.UsuarioByEmail(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("could not get usuario: %w", err)
	}
	if u == nil || !u.Password().Verify(password) {
		logger.Get(ctx).Info("authentication failed", zap.Bool("known", u != nil))

		return nil, ErrInvalidCredentials
	}

	u.Touch(s.options.now())
	updated, err := s.storage.UpdateUsuario(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("could not update last connection: %w", err)
	}
	if updated == nil {
		return nil, ErrInvalidCredentials
	}

	return updated, nil
}

func (s *usuarioService) VerificarEmail(ctx context.Context, id domain.UsuarioID) (*domain.Usuario, error) {
	u, err := s.ObtenerUsuario(ctx, id)
	if err != nil {
		return nil, err
	}

	u.MarkVerified()
	updated, err := s.storage.UpdateUsuario(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("could not verify usuario: %w", err)
	}
	if updated == nil {
		return nil, serrors.NotFound("usuario", id)
	}

	return updated, nil
}

func (s *usuarioService) ObtenerUsuario(ctx context.Context, id domain.UsuarioID) (*domain.Usuario, error) {
	u, err := s.storage.UsuarioByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get usuario: %w", err)
	}
	if u == nil {
		return nil, serrors.NotFound("usuario", id)
	}

	return u, nil
}

func (s *usuarioService) ObtenerUsuarioPorEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	e, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}

	u, err := s.storage.UsuarioByEmail(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("could not get usuario: %w", err)
	}
	if u == nil {
		return nil, serrors.NotFound("usuario", e).WithField("email")
	}

	return u, nil
}

func NewUsuarioService(storage storage.Storage, roles RolService, options Options) UsuarioService {
	return &usuarioService{
		options: options,
		storage: storage,
		roles:   roles,
	}
}
