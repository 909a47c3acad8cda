package facade_test

import (
	"context"
	"errors"
	"registry/internal/facade"
	"registry/internal/service"
	"registry/pkg/domain"
	"registry/pkg/result"
	"registry/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validPerfil() facade.PerfilRequest {
	return facade.PerfilRequest{
		ID:        9,
		UserID:    7,
		SexID:     1,
		DNI:       ptr("12345678"),
		Name:      " Ana ",
		Surname:   "Gómez",
		BirthDate: "1990-05-17",
		Email:     "User@Example.com",
	}
}

func TestCrearPerfil(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	d.perfiles.EXPECT().CrearPerfil(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f domain.PerfilFields) (*domain.PerfilUsuario, error) {
			require.Equal(t, domain.UsuarioID(7), f.UserID)
			require.Equal(t, "Ana", f.Name)
			require.Equal(t, "user@example.com", f.Email.String())
			require.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), f.BirthDate)
			require.Equal(t, "12345678", *f.DNI)
			require.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), f.AsOf)

			return perfil(t, 9, 7), nil
		})

	res := d.perfil().CrearPerfil(ctx, validPerfil())

	view, ok := res.Data()
	require.True(t, ok, res.Errors())
	require.Equal(t, int64(9), view.ID)
	require.Equal(t, int64(7), view.UserID)
}

func TestCrearPerfil_ReportsEveryViolation(t *testing.T) {
	d := newDeps(t)
	req := validPerfil()
	req.UserID = 0
	req.SexID = 0
	req.BirthDate = "2999-01-01"
	req.Email = "nope"

	res := d.perfil().CrearPerfil(context.Background(), req)

	fields := []string{}
	for _, e := range res.Errors() {
		require.Equal(t, result.CodeValidation, e.Code)
		fields = append(fields, e.Field)
	}
	require.ElementsMatch(t, []string{"userId", "sexId", "birthDate", "email"}, fields)
}

func TestCrearPerfil_Duplicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		field string
		msg   string
	}{
		{"profile per user", serrors.Duplicate("perfil", 7, "userId"), "userId", "user already has a profile"},
		{"dni", serrors.Duplicate("dni", "12345678", "dni"), "dni", "dni is already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			d.perfiles.EXPECT().CrearPerfil(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			res := d.perfil().CrearPerfil(context.Background(), validPerfil())

			require.Equal(t, []result.ErrorRecord{{Code: result.CodeDuplicate, Message: tt.msg, Field: tt.field}}, res.Errors())
		})
	}
}

func TestCrearPerfil_DomainValidationErrorsAreUnpacked(t *testing.T) {
	d := newDeps(t)
	d.perfiles.EXPECT().CrearPerfil(gomock.Any(), gomock.Any()).Return(nil, domain.ValidationErrors{
		serrors.Invalid(serrors.ErrValidation, "name", "name is required"),
		serrors.Invalid(serrors.ErrValidation, "surname", "surname is required"),
	})

	res := d.perfil().CrearPerfil(context.Background(), validPerfil())

	require.Equal(t, []result.ErrorRecord{
		{Code: result.CodeValidation, Message: "name is required", Field: "name"},
		{Code: result.CodeValidation, Message: "surname is required", Field: "surname"},
	}, res.Errors())
}

func TestActualizarPerfil(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	d.perfiles.EXPECT().ActualizarPerfil(ctx, domain.PerfilID(9), gomock.Any()).Return(perfil(t, 9, 7), nil)

	require.True(t, d.perfil().ActualizarPerfil(ctx, validPerfil()).IsSuccess())
}

func TestActualizarPerfil_MissingIDIsIllegal(t *testing.T) {
	d := newDeps(t)
	req := validPerfil()
	req.ID = 0

	for _, res := range []result.Result[facade.PerfilView]{
		d.perfil().ActualizarPerfil(context.Background(), req),
		d.perfil().ActualizarPerfilConFoto(context.Background(), req, []byte("x"), "a.png"),
	} {
		require.Equal(t, []result.ErrorRecord{{
			Code:    result.CodeIllegalArg,
			Message: "must be a positive id",
			Field:   "id",
		}}, res.Errors())
	}
}

func TestActualizarPerfil_UserIDNotRequired(t *testing.T) {
	d := newDeps(t)
	req := validPerfil()
	req.UserID = 0

	d.perfiles.EXPECT().ActualizarPerfil(gomock.Any(), domain.PerfilID(9), gomock.Any()).Return(perfil(t, 9, 7), nil)

	require.True(t, d.perfil().ActualizarPerfil(context.Background(), req).IsSuccess())
}

func TestActualizarPerfilConFoto_FinalizesAfterCommit(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()
	photo := []byte("png")
	rep := &service.PhotoReplacement{Perfil: perfil(t, 9, 7), NewLink: "perfil/9/new.png", OldLink: "perfil/9/old.png"}

	d.expectTx(nil)
	gomock.InOrder(
		d.perfiles.EXPECT().ActualizarPerfilConFoto(ctx, d.tx, domain.PerfilID(9), gomock.Any(), photo, "me.png").Return(rep, nil),
		d.perfiles.EXPECT().FinalizarReemplazo(ctx, rep),
	)

	res := d.perfil().ActualizarPerfilConFoto(ctx, validPerfil(), photo, "me.png")

	require.True(t, res.IsSuccess(), res.Errors())
}

func TestActualizarPerfilConFoto_CommitFailureDiscardsNewFile(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()
	rep := &service.PhotoReplacement{Perfil: perfil(t, 9, 7), NewLink: "perfil/9/new.png"}

	d.expectTx(serrors.Infra(errors.New("serialization failure"), "could not commit"))
	d.perfiles.EXPECT().ActualizarPerfilConFoto(ctx, d.tx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(rep, nil)
	d.perfiles.EXPECT().DescartarReemplazo(ctx, rep)

	res := d.perfil().ActualizarPerfilConFoto(ctx, validPerfil(), []byte("png"), "me.png")

	first, _ := res.FirstError()
	require.Equal(t, result.CodeInfrastructure, first.Code)
}

func TestActualizarPerfilConFoto_ServiceFailure(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	d.expectTx(nil)
	d.perfiles.EXPECT().ActualizarPerfilConFoto(ctx, d.tx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.Infra(errors.New("disk full"), "could not store photo"))

	res := d.perfil().ActualizarPerfilConFoto(ctx, validPerfil(), []byte("png"), "me.png")

	require.Equal(t, []result.ErrorRecord{{
		Code:    result.CodeInfrastructure,
		Message: "could not complete the operation: could not store photo",
	}}, res.Errors())
}

func TestActualizarPerfilConFoto_PhotoNameRequired(t *testing.T) {
	d := newDeps(t)

	res := d.perfil().ActualizarPerfilConFoto(context.Background(), validPerfil(), []byte("png"), "")

	require.Equal(t, []result.ErrorRecord{{Code: result.CodeValidation, Message: "is required", Field: "photoName"}}, res.Errors())
}

func TestObtenerPerfil(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	d.perfiles.EXPECT().ObtenerPerfilPorUsuario(ctx, domain.UsuarioID(7)).Return(perfil(t, 9, 7), nil)
	d.perfiles.EXPECT().ObtenerPerfilPorDNI(ctx, "123").Return(nil, serrors.NotFound("perfil", "123"))

	require.True(t, d.perfil().ObtenerPerfilPorUsuario(ctx, 7).IsSuccess())

	res := d.perfil().ObtenerPerfilPorDNI(ctx, " 123 ")
	first, _ := res.FirstError()
	require.Equal(t, result.CodeNotFound, first.Code)

	res = d.perfil().ObtenerPerfilPorDNI(ctx, "  ")
	first, _ = res.FirstError()
	require.Equal(t, result.CodeValidation, first.Code)
	require.Equal(t, "dni", first.Field)
}

func TestVerificarPerfil(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()
	verified := perfil(t, 9, 7)
	verified.MarkVerified()

	d.perfiles.EXPECT().VerificarPerfil(ctx, domain.PerfilID(9)).Return(verified, nil)

	view, ok := d.perfil().VerificarPerfil(ctx, 9).Data()
	require.True(t, ok)
	require.True(t, view.Verified)

	first, _ := d.perfil().VerificarPerfil(ctx, 0).FirstError()
	require.Equal(t, result.CodeIllegalArg, first.Code)
}
