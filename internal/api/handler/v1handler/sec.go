package v1handler

import (
	"net/http"
	"registry/pkg/logger"
	"registry/pkg/result"
	"registry/pkg/session"
	"strings"

	"go.uber.org/zap"
)

// authenticatedFunc is a handler that receives the caller's session explicitly.
type authenticatedFunc func(w http.ResponseWriter, r *http.Request, s session.Session)

// authenticated parses the bearer token and hands the session to fn. Missing
// or invalid tokens are answered with 401 and an UNAUTHORIZED envelope.
func (h *Handler) authenticated(fn authenticatedFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok || h.deps.Sessions == nil {
			unauthorized(w, r, "missing bearer token")

			return
		}

		s, err := h.deps.Sessions.Parse(token)
		if err != nil {
			logger.Info(r.Context(), "rejected session token", zap.Error(err))
			unauthorized(w, r, "invalid or expired session")

			return
		}

		ctx := logger.WithFields(r.Context(), zap.Int64("user_id", int64(s.UserID)))
		fn(w, r.WithContext(ctx), s)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="registry"`)
	writeResult(w, r, http.StatusOK, result.FailWith[struct{}](result.ErrorRecord{
		Code:    result.CodeUnauthorized,
		Message: msg,
	}))
}
