package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"registry/internal/facade"
	"registry/pkg/result"
	"registry/pkg/session"
	"strings"
)

func (h *Handler) crearPerfil(w http.ResponseWriter, r *http.Request, _ session.Session) {
	var req facade.PerfilRequest
	if !decode(w, r, &req) {
		return
	}

	writeResult(w, r, http.StatusCreated, h.deps.Perfil.CrearPerfil(r.Context(), req))
}

func (h *Handler) actualizarPerfil(w http.ResponseWriter, r *http.Request, _ session.Session) {
	var req facade.PerfilRequest
	if !decode(w, r, &req) {
		return
	}
	req.ID = pathID(r)

	writeResult(w, r, http.StatusOK, h.deps.Perfil.ActualizarPerfil(r.Context(), req))
}

// actualizarPerfilConFoto expects a multipart form with the profile as JSON
// in the "perfil" field and the image in the "photo" file field. The photo
// part is optional.
func (h *Handler) actualizarPerfilConFoto(w http.ResponseWriter, r *http.Request, _ session.Session) {
	if err := r.ParseMultipartForm(h.maxPhotoBytes); err != nil {
		badPayload(w, r, err)

		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	var req facade.PerfilRequest
	dec := json.NewDecoder(strings.NewReader(r.FormValue("perfil")))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badPayload(w, r, err)

		return
	}
	req.ID = pathID(r)

	var (
		photo []byte
		name  string
	)
	file, header, err := r.FormFile("photo")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		badPayload(w, r, err)

		return
	default:
		defer func() { _ = file.Close() }()
		photo, err = io.ReadAll(file)
		if err != nil {
			writeResult(w, r, http.StatusOK, result.FailWith[struct{}](result.ErrorRecord{
				Code:    result.CodeValidation,
				Message: "could not read photo",
				Field:   "photo",
			}))

			return
		}
		name = header.Filename
	}

	writeResult(w, r, http.StatusOK, h.deps.Perfil.ActualizarPerfilConFoto(r.Context(), req, photo, name))
}

func (h *Handler) obtenerPerfilPorUsuario(w http.ResponseWriter, r *http.Request, _ session.Session) {
	writeResult(w, r, http.StatusOK, h.deps.Perfil.ObtenerPerfilPorUsuario(r.Context(), pathID(r)))
}

func (h *Handler) obtenerPerfilPorDNI(w http.ResponseWriter, r *http.Request, _ session.Session) {
	writeResult(w, r, http.StatusOK, h.deps.Perfil.ObtenerPerfilPorDNI(r.Context(), r.URL.Query().Get("dni")))
}

func (h *Handler) verificarPerfil(w http.ResponseWriter, r *http.Request, _ session.Session) {
	writeResult(w, r, http.StatusOK, h.deps.Perfil.VerificarPerfil(r.Context(), pathID(r)))
}
