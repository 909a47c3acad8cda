package facade

import (
	"context"
	"errors"
	"registry/internal/uow"
	"registry/pkg/domain"
	"registry/pkg/result"
	"registry/pkg/serrors"
	"registry/pkg/storage"
	"time"

	"github.com/go-playground/validator/v10"
)

type authFacade struct {
	options  Options
	storage  storage.Storage
	services Services
	sessions SessionIssuer
	validate *validator.Validate
}

type registered struct {
	usuario *domain.Usuario
	perfil  *domain.PerfilUsuario
}

// RegistrarUsuario validates the whole request, then creates the user and its
// profile in one unit of work: a failed profile leaves no user behind.
func (f *authFacade) RegistrarUsuario(ctx context.Context, req RegistroRequest) (res result.Result[UsuarioView]) {
	const op = "registrarUsuario"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	req.normalize()
	var v violations
	if err := v.structErrors(f.validate, req); err != nil {
		return fail[UsuarioView](ctx, op, err)
	}
	v.check("email", func() error {
		_, err := domain.NewEmail(req.Email)

		return err
	})
	v.check("password", func() error { return domain.CheckPasswordPolicy(req.Password) })
	birthDate := f.options.DefaultBirthDate
	if req.BirthDate != nil {
		v.check("birthDate", func() error {
			d, err := parseBirthDate(*req.BirthDate, f.options.today())
			birthDate = d

			return err
		})
	}
	if !v.empty() {
		return invalid[UsuarioView](ctx, op, &v)
	}

	out, err := uow.Execute(ctx, f.storage, func(tx storage.AllStorage) (registered, error) {
		u, err := f.services.Usuarios.RegistrarUsuarioTx(ctx, tx, req.Email, req.Password)
		if err != nil {
			return registered{}, err
		}

		p, err := f.services.Perfiles.CrearPerfilTx(ctx, tx, domain.PerfilFields{
			UserID:    u.ID(),
			SexID:     f.options.DefaultSexID,
			Name:      req.Name,
			Surname:   req.Surname,
			BirthDate: birthDate,
			Email:     u.Email(),
			Phone:     req.Phone,
			AsOf:      f.options.today(),
		})
		if err != nil {
			return registered{}, err
		}

		return registered{usuario: u, perfil: p}, nil
	})
	if err != nil {
		return fail[UsuarioView](ctx, op, err)
	}

	rol, err := f.services.Roles.ObtenerRol(ctx, out.usuario.RoleID())
	if err != nil {
		return enrichmentFailed[UsuarioView](ctx, op, err)
	}

	return result.OK(usuarioView(out.usuario, rol, out.perfil))
}

// IniciarSesion authenticates and returns an explicit session. Unknown emails
// and wrong passwords fail identically.
func (f *authFacade) IniciarSesion(ctx context.Context, req LoginRequest) (res result.Result[SessionView]) {
	const op = "iniciarSesion"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	var v violations
	if err := v.structErrors(f.validate, req); err != nil {
		return fail[SessionView](ctx, op, err)
	}
	if !v.empty() {
		return invalid[SessionView](ctx, op, &v)
	}

	u, err := f.services.Usuarios.IniciarSesion(ctx, req.Email, req.Password)
	if err != nil {
		return fail[SessionView](ctx, op, err)
	}

	view, err := f.enrich(ctx, u)
	if err != nil {
		return enrichmentFailed[SessionView](ctx, op, err)
	}
	out := SessionView{Usuario: view}

	if f.sessions != nil {
		s, token, err := f.sessions.Issue(u)
		if err != nil {
			return fail[SessionView](ctx, op, serrors.Infra(err, "could not issue session"))
		}
		out.Token = token
		out.ExpiresAt = &s.ExpiresAt
	}

	return result.OK(out)
}

func (f *authFacade) VerificarEmail(ctx context.Context, userID int64) (res result.Result[UsuarioView]) {
	const op = "verificarEmail"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	if userID <= 0 {
		return illegalID[UsuarioView]("userId")
	}

	u, err := f.services.Usuarios.VerificarEmail(ctx, domain.UsuarioID(userID))
	if err != nil {
		return fail[UsuarioView](ctx, op, err)
	}

	view, err := f.enrich(ctx, u)
	if err != nil {
		return enrichmentFailed[UsuarioView](ctx, op, err)
	}

	return result.OK(view)
}

func (f *authFacade) ObtenerUsuario(ctx context.Context, userID int64) (res result.Result[UsuarioView]) {
	const op = "obtenerUsuario"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	if userID <= 0 {
		return illegalID[UsuarioView]("userId")
	}

	u, err := f.services.Usuarios.ObtenerUsuario(ctx, domain.UsuarioID(userID))
	if err != nil {
		return fail[UsuarioView](ctx, op, err)
	}

	view, err := f.enrich(ctx, u)
	if err != nil {
		return fail[UsuarioView](ctx, op, err)
	}

	return result.OK(view)
}

func (f *authFacade) ObtenerUsuarioPorEmail(ctx context.Context, email string) (res result.Result[UsuarioView]) {
	const op = "obtenerUsuarioPorEmail"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	u, err := f.services.Usuarios.ObtenerUsuarioPorEmail(ctx, email)
	if err != nil {
		return fail[UsuarioView](ctx, op, err)
	}

	view, err := f.enrich(ctx, u)
	if err != nil {
		return fail[UsuarioView](ctx, op, err)
	}

	return result.OK(view)
}

// enrich loads the role and, when there is one, the profile of u.
func (f *authFacade) enrich(ctx context.Context, u *domain.Usuario) (UsuarioView, error) {
	rol, err := f.services.Roles.ObtenerRol(ctx, u.RoleID())
	if err != nil {
		return UsuarioView{}, err
	}

	perfil, err := f.services.Perfiles.ObtenerPerfilPorUsuario(ctx, u.ID())
	if err != nil && !errors.Is(err, serrors.ErrNotFound) {
		return UsuarioView{}, err
	}

	return usuarioView(u, rol, perfil), nil
}

// NewAuthFacade returns the registration and authentication entry point.
// sessions may be nil, in which case logins carry no token.
func NewAuthFacade(storage storage.Storage, services Services, sessions SessionIssuer, options Options) AuthFacade {
	return &authFacade{
		options:  options,
		storage:  storage,
		services: services,
		sessions: sessions,
		validate: newValidator(),
	}
}
