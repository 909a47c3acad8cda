package facade

import (
	"context"
	"registry/internal/service"
	"registry/internal/uow"
	"registry/pkg/domain"
	"registry/pkg/result"
	"registry/pkg/storage"
	"time"

	"github.com/go-playground/validator/v10"
)

type perfilFacade struct {
	options  Options
	uow      uow.UnitOfWork
	services Services
	validate *validator.Validate
}

func (f *perfilFacade) CrearPerfil(ctx context.Context, req PerfilRequest) (res result.Result[PerfilView]) {
	const op = "crearPerfil"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	var v violations
	if req.UserID <= 0 {
		v.add("userId", "is required")
	}
	fields, err := f.fields(&req, &v)
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}
	if !v.empty() {
		return invalid[PerfilView](ctx, op, &v)
	}
	fields.UserID = domain.UsuarioID(req.UserID)

	p, err := f.services.Perfiles.CrearPerfil(ctx, fields)
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}

	return result.OK(perfilView(p))
}

func (f *perfilFacade) ActualizarPerfil(ctx context.Context, req PerfilRequest) (res result.Result[PerfilView]) {
	const op = "actualizarPerfil"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	if req.ID <= 0 {
		return illegalID[PerfilView]("id")
	}
	var v violations
	fields, err := f.fields(&req, &v)
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}
	if !v.empty() {
		return invalid[PerfilView](ctx, op, &v)
	}

	p, err := f.services.Perfiles.ActualizarPerfil(ctx, domain.PerfilID(req.ID), fields)
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}

	return result.OK(perfilView(p))
}

// ActualizarPerfilConFoto runs the photo replacement in a unit of work. The
// replaced file is deleted only after commit; when the commit fails the
// freshly written file is deleted instead.
func (f *perfilFacade) ActualizarPerfilConFoto(ctx context.Context,
	req PerfilRequest,
	photo []byte,
	photoName string) (res result.Result[PerfilView]) {
	const op = "actualizarPerfilConFoto"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	if req.ID <= 0 {
		return illegalID[PerfilView]("id")
	}
	var v violations
	fields, err := f.fields(&req, &v)
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}
	if len(photo) > 0 && photoName == "" {
		v.add("photoName", "is required")
	}
	if !v.empty() {
		return invalid[PerfilView](ctx, op, &v)
	}

	var replacement *service.PhotoReplacement
	err = f.uow.Do(ctx, func(tx storage.AllStorage) error {
		r, err := f.services.Perfiles.ActualizarPerfilConFoto(ctx, tx, domain.PerfilID(req.ID), fields, photo, photoName)
		replacement = r

		return err
	})
	if err != nil {
		if replacement != nil {
			f.services.Perfiles.DescartarReemplazo(ctx, replacement)
		}

		return fail[PerfilView](ctx, op, err)
	}
	f.services.Perfiles.FinalizarReemplazo(ctx, replacement)

	return result.OK(perfilView(replacement.Perfil))
}

func (f *perfilFacade) ObtenerPerfilPorUsuario(ctx context.Context, userID int64) (res result.Result[PerfilView]) {
	const op = "obtenerPerfilPorUsuario"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	if userID <= 0 {
		return illegalID[PerfilView]("userId")
	}

	p, err := f.services.Perfiles.ObtenerPerfilPorUsuario(ctx, domain.UsuarioID(userID))
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}

	return result.OK(perfilView(p))
}

func (f *perfilFacade) ObtenerPerfilPorDNI(ctx context.Context, dni string) (res result.Result[PerfilView]) {
	const op = "obtenerPerfilPorDni"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	trimmed := trimOptional(&dni)
	if trimmed == nil {
		return result.FailWith[PerfilView](result.ErrorRecord{
			Code:    result.CodeValidation,
			Message: "is required",
			Field:   "dni",
		})
	}

	p, err := f.services.Perfiles.ObtenerPerfilPorDNI(ctx, *trimmed)
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}

	return result.OK(perfilView(p))
}

func (f *perfilFacade) VerificarPerfil(ctx context.Context, perfilID int64) (res result.Result[PerfilView]) {
	const op = "verificarPerfil"
	defer observe(ctx, f.options.Metrics, op, time.Now(), &res)

	if perfilID <= 0 {
		return illegalID[PerfilView]("id")
	}

	p, err := f.services.Perfiles.VerificarPerfil(ctx, domain.PerfilID(perfilID))
	if err != nil {
		return fail[PerfilView](ctx, op, err)
	}

	return result.OK(perfilView(p))
}

// fields validates req into v and converts it. The returned error is not a
// violation but a failure of the validator itself.
func (f *perfilFacade) fields(req *PerfilRequest, v *violations) (domain.PerfilFields, error) {
	req.normalize()
	if err := v.structErrors(f.validate, req); err != nil {
		return domain.PerfilFields{}, err
	}

	out := domain.PerfilFields{AsOf: f.options.today()}
	v.check("email", func() error {
		e, err := domain.NewEmail(req.Email)
		out.Email = e

		return err
	})
	v.check("birthDate", func() error {
		d, err := parseBirthDate(req.BirthDate, f.options.today())
		out.BirthDate = d

		return err
	})
	out.SexID = domain.SexID(req.SexID)
	out.DNI = req.DNI
	out.Name = req.Name
	out.Surname = req.Surname
	out.Phone = req.Phone
	out.AddressID = req.AddressID
	out.SocialNetworkID = req.SocialNetworkID

	return out, nil
}

func NewPerfilFacade(storage storage.Storage, services Services, options Options) PerfilFacade {
	return &perfilFacade{
		options:  options,
		uow:      uow.New(storage),
		services: services,
		validate: newValidator(),
	}
}
