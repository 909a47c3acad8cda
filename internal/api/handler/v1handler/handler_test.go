package v1handler_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"registry/internal/api/handler/v1handler"
	"registry/internal/facade"
	mockfacade "registry/internal/facade/mock"
	"registry/pkg/domain"
	"registry/pkg/result"
	"registry/pkg/session"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	auth     *mockfacade.MockAuthFacade
	perfil   *mockfacade.MockPerfilFacade
	sessions *session.Manager
	mux      *http.ServeMux
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	sessions, err := session.New(session.Options{PrivateKey: string(pemKey), Issuer: "registry", TTL: time.Hour})
	require.NoError(t, err)

	f := fixture{
		auth:     mockfacade.NewMockAuthFacade(ctrl),
		perfil:   mockfacade.NewMockPerfilFacade(ctrl),
		sessions: sessions,
		mux:      http.NewServeMux(),
	}
	v1handler.New(v1handler.Deps{Auth: f.auth, Perfil: f.perfil, Sessions: sessions}, 1<<20).Register(f.mux)

	return f
}

func (f fixture) token(t *testing.T, id domain.UsuarioID) string {
	t.Helper()
	u := domain.RestoreUsuario(id, mustEmail(t, "user@example.com"), domain.Password{}, 2, true, nil, time.Now())
	_, token, err := f.sessions.Issue(u)
	require.NoError(t, err)

	return token
}

func (f fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	return rec
}

func mustEmail(t *testing.T, s string) domain.Email {
	t.Helper()
	e, err := domain.NewEmail(s)
	require.NoError(t, err)

	return e
}

func envelope[T any](t *testing.T, rec *httptest.ResponseRecorder) result.Envelope[T] {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env result.Envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRegistrarUsuario_Created(t *testing.T) {
	f := newFixture(t)
	body := `{"email":"user@example.com","password":"Str0ngPass!","confirmPassword":"Str0ngPass!","name":"Ana","surname":"Gómez"}`

	f.auth.EXPECT().RegistrarUsuario(gomock.Any(), facade.RegistroRequest{
		Email:           "user@example.com",
		Password:        "Str0ngPass!",
		ConfirmPassword: "Str0ngPass!",
		Name:            "Ana",
		Surname:         "Gómez",
	}).Return(result.OK(facade.UsuarioView{ID: 7, Email: "user@example.com"}))

	rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/usuarios", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	env := envelope[facade.UsuarioView](t, rec)
	require.True(t, env.Success)
	require.Equal(t, int64(7), env.Data.ID)
}

func TestRegistrarUsuario_FailureStatuses(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{result.CodeValidation, http.StatusUnprocessableEntity},
		{result.CodeDuplicate, http.StatusConflict},
		{result.CodeNotFound, http.StatusNotFound},
		{result.CodeIllegalArg, http.StatusBadRequest},
		{result.CodeInfrastructure, http.StatusServiceUnavailable},
		{result.CodeGeneric, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			f := newFixture(t)
			f.auth.EXPECT().RegistrarUsuario(gomock.Any(), gomock.Any()).
				Return(result.FailWith[facade.UsuarioView](result.ErrorRecord{Code: tt.code, Message: "x", Field: "email"}))

			rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/usuarios", strings.NewReader(`{}`)))

			require.Equal(t, tt.status, rec.Code)
			env := envelope[facade.UsuarioView](t, rec)
			require.False(t, env.Success)
			require.Nil(t, env.Data)
			require.Equal(t, tt.code, env.Errors[0].Code)
		})
	}
}

func TestDecode_BadPayloads(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"syntax", `{"email":`, "payload", "invalid json"},
		{"empty", ``, "payload", "invalid json"},
		{"unknown field", `{"nope":1}`, "payload", "invalid payload"},
		{"wrong type", `{"email":1}`, "email", "must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/sesiones", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := envelope[struct{}](t, rec)
			require.Equal(t, []result.ErrorRecord{{Code: result.CodeValidation, Message: tt.msg, Field: tt.field}}, env.Errors)
		})
	}
}

func TestIniciarSesion(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().IniciarSesion(gomock.Any(), facade.LoginRequest{Email: "user@example.com", Password: "pw"}).
		Return(result.OK(facade.SessionView{Token: "t"}))

	rec := f.do(httptest.NewRequest(http.MethodPost, "/v1/sesiones",
		strings.NewReader(`{"email":"user@example.com","password":"pw"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "t", envelope[facade.SessionView](t, rec).Data.Token)
}

func TestMe_UsesSessionUser(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().ObtenerUsuario(gomock.Any(), int64(42)).Return(result.OK(facade.UsuarioView{ID: 42}))

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+f.token(t, 42))
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(42), envelope[facade.UsuarioView](t, rec).Data.ID)
}

func TestObtenerUsuario_PathID(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().ObtenerUsuario(gomock.Any(), int64(7)).Return(result.OK(facade.UsuarioView{ID: 7}))
	f.auth.EXPECT().ObtenerUsuario(gomock.Any(), int64(0)).
		Return(result.FailWith[facade.UsuarioView](result.ErrorRecord{Code: result.CodeIllegalArg, Message: "x"}))

	for path, status := range map[string]int{"/v1/usuarios/7": http.StatusOK, "/v1/usuarios/abc": http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+f.token(t, 1))

		require.Equal(t, status, f.do(req).Code, path)
	}
}

func TestObtenerPorQuery(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().ObtenerUsuarioPorEmail(gomock.Any(), "a@b.co").Return(result.OK(facade.UsuarioView{ID: 1}))
	f.perfil.EXPECT().ObtenerPerfilPorDNI(gomock.Any(), "123").Return(result.OK(facade.PerfilView{ID: 2}))

	token := f.token(t, 1)
	for _, path := range []string{"/v1/usuarios?email=a@b.co", "/v1/perfiles?dni=123"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		require.Equal(t, http.StatusOK, f.do(req).Code, path)
	}
}

func TestActualizarPerfil_IDFromPath(t *testing.T) {
	f := newFixture(t)
	f.perfil.EXPECT().ActualizarPerfil(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req facade.PerfilRequest) result.Result[facade.PerfilView] {
			require.Equal(t, int64(9), req.ID, "path wins over body")
			require.Equal(t, "Ana", req.Name)

			return result.OK(facade.PerfilView{ID: 9})
		})

	req := httptest.NewRequest(http.MethodPut, "/v1/perfiles/9", strings.NewReader(`{"id":1,"name":"Ana"}`))
	req.Header.Set("Authorization", "Bearer "+f.token(t, 1))

	require.Equal(t, http.StatusOK, f.do(req).Code)
}

func multipartBody(t *testing.T, perfil string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("perfil", perfil))
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "me.png")
		require.NoError(t, err)
		_, err = fw.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestActualizarPerfilConFoto(t *testing.T) {
	f := newFixture(t)
	f.perfil.EXPECT().ActualizarPerfilConFoto(gomock.Any(), gomock.Any(), []byte("png-bytes"), "me.png").DoAndReturn(
		func(_ any, req facade.PerfilRequest, _ []byte, _ string) result.Result[facade.PerfilView] {
			require.Equal(t, int64(9), req.ID)
			require.Equal(t, "Ana", req.Name)

			return result.OK(facade.PerfilView{ID: 9, PhotoImageID: new(int64)})
		})

	body, contentType := multipartBody(t, `{"name":"Ana"}`, []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPut, "/v1/perfiles/9/foto", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+f.token(t, 1))

	require.Equal(t, http.StatusOK, f.do(req).Code)
}

func TestActualizarPerfilConFoto_WithoutPhoto(t *testing.T) {
	f := newFixture(t)
	f.perfil.EXPECT().ActualizarPerfilConFoto(gomock.Any(), gomock.Any(), []byte(nil), "").
		Return(result.OK(facade.PerfilView{ID: 9}))

	body, contentType := multipartBody(t, `{"name":"Ana"}`, nil)
	req := httptest.NewRequest(http.MethodPut, "/v1/perfiles/9/foto", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+f.token(t, 1))

	require.Equal(t, http.StatusOK, f.do(req).Code)
}

func TestActualizarPerfilConFoto_NotMultipart(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/perfiles/9/foto", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token(t, 1))

	require.Equal(t, http.StatusBadRequest, f.do(req).Code)
}

func TestVerificacion(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().VerificarEmail(gomock.Any(), int64(7)).Return(result.OK(facade.UsuarioView{ID: 7, Verified: true}))
	f.perfil.EXPECT().VerificarPerfil(gomock.Any(), int64(9)).Return(result.OK(facade.PerfilView{ID: 9, Verified: true}))
	f.perfil.EXPECT().ObtenerPerfilPorUsuario(gomock.Any(), int64(7)).Return(result.OK(facade.PerfilView{ID: 9}))
	f.perfil.EXPECT().CrearPerfil(gomock.Any(), gomock.Any()).Return(result.OK(facade.PerfilView{ID: 9}))

	token := f.token(t, 1)
	for _, tc := range []struct {
		method, path, body string
		status             int
	}{
		{http.MethodPost, "/v1/usuarios/7/verificacion", "", http.StatusOK},
		{http.MethodPost, "/v1/perfiles/9/verificacion", "", http.StatusOK},
		{http.MethodGet, "/v1/usuarios/7/perfil", "", http.StatusOK},
		{http.MethodPost, "/v1/perfiles", `{"userId":7}`, http.StatusCreated},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Authorization", "Bearer "+token)

		require.Equal(t, tc.status, f.do(req).Code, tc.path)
	}
}

func domainUser(t *testing.T) *domain.Usuario {
	t.Helper()

	return domain.RestoreUsuario(1, mustEmail(t, "user@example.com"), domain.Password{}, 2, true, nil, time.Now())
}
