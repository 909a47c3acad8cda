package v1handler

import (
	"net/http"
	"registry/internal/facade"
	"registry/pkg/session"
)

func (h *Handler) registrarUsuario(w http.ResponseWriter, r *http.Request) {
	var req facade.RegistroRequest
	if !decode(w, r, &req) {
		return
	}

	writeResult(w, r, http.StatusCreated, h.deps.Auth.RegistrarUsuario(r.Context(), req))
}

func (h *Handler) iniciarSesion(w http.ResponseWriter, r *http.Request) {
	var req facade.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	writeResult(w, r, http.StatusOK, h.deps.Auth.IniciarSesion(r.Context(), req))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, s session.Session) {
	writeResult(w, r, http.StatusOK, h.deps.Auth.ObtenerUsuario(r.Context(), int64(s.UserID)))
}

func (h *Handler) obtenerUsuario(w http.ResponseWriter, r *http.Request, _ session.Session) {
	writeResult(w, r, http.StatusOK, h.deps.Auth.ObtenerUsuario(r.Context(), pathID(r)))
}

func (h *Handler) obtenerUsuarioPorEmail(w http.ResponseWriter, r *http.Request, _ session.Session) {
	writeResult(w, r, http.StatusOK, h.deps.Auth.ObtenerUsuarioPorEmail(r.Context(), r.URL.Query().Get("email")))
}

func (h *Handler) verificarEmail(w http.ResponseWriter, r *http.Request, _ session.Session) {
	writeResult(w, r, http.StatusOK, h.deps.Auth.VerificarEmail(r.Context(), pathID(r)))
}
