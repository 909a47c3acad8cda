// Package v1handler serves the facades as JSON over HTTP. Every response body
// is a result envelope; the HTTP status only mirrors its first error code.
package v1handler

import (
	"net/http"
	"registry/internal/facade"
	"registry/pkg/controller"
	"registry/pkg/session"
)

// SessionParser verifies a bearer token. *session.Manager implements it.
type SessionParser interface {
	Parse(token string) (session.Session, error)
}

type Deps struct {
	Auth     facade.AuthFacade
	Perfil   facade.PerfilFacade
	Sessions SessionParser
}

type Handler struct {
	deps Deps
	// maxPhotoBytes bounds the in-memory part of multipart photo uploads.
	maxPhotoBytes int64
}

func New(deps Deps, maxPhotoBytes int64) *Handler {
	return &Handler{deps: deps, maxPhotoBytes: maxPhotoBytes}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	public := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, controller.Routed(fn))
	}
	private := func(pattern string, fn authenticatedFunc) {
		mux.Handle(pattern, controller.Routed(h.authenticated(fn)))
	}

	public("POST /v1/usuarios", h.registrarUsuario)
	public("POST /v1/sesiones", h.iniciarSesion)

	private("GET /v1/me", h.me)
	private("GET /v1/usuarios", h.obtenerUsuarioPorEmail)
	private("GET /v1/usuarios/{id}", h.obtenerUsuario)
	private("POST /v1/usuarios/{id}/verificacion", h.verificarEmail)
	private("GET /v1/usuarios/{id}/perfil", h.obtenerPerfilPorUsuario)

	private("POST /v1/perfiles", h.crearPerfil)
	private("GET /v1/perfiles", h.obtenerPerfilPorDNI)
	private("PUT /v1/perfiles/{id}", h.actualizarPerfil)
	private("PUT /v1/perfiles/{id}/foto", h.actualizarPerfilConFoto)
	private("POST /v1/perfiles/{id}/verificacion", h.verificarPerfil)
}
