package v1handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"registry/pkg/logger"
	"registry/pkg/result"
	"strconv"

	"go.uber.org/zap"
)

// statuses maps result codes to HTTP statuses.
var statuses = map[string]int{ //nolint: gochecknoglobals
	result.CodeValidation:     http.StatusUnprocessableEntity,
	result.CodeNotFound:       http.StatusNotFound,
	result.CodeDuplicate:      http.StatusConflict,
	result.CodeIllegalArg:     http.StatusBadRequest,
	result.CodeUnauthorized:   http.StatusUnauthorized,
	result.CodeInfrastructure: http.StatusServiceUnavailable,
	result.CodeGeneric:        http.StatusInternalServerError,
}

func statusOf[T any](res result.Result[T], success int) int {
	first, ok := res.FirstError()
	if !ok {
		return success
	}
	if s, ok := statuses[first.Code]; ok {
		return s
	}

	return http.StatusInternalServerError
}

// writeResult writes res as a JSON envelope. success is the status of a
// successful result.
func writeResult[T any](w http.ResponseWriter, r *http.Request, success int, res result.Result[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusOf(res, success))

	if err := json.NewEncoder(w).Encode(res.Envelope()); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}

// decode reads a JSON body into v. On failure it answers the request and
// returns false.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		badPayload(w, r, err)

		return false
	}

	return true
}

func badPayload(w http.ResponseWriter, r *http.Request, err error) {
	rec := result.ErrorRecord{Code: result.CodeValidation, Message: "invalid payload", Field: "payload"}
	status := http.StatusBadRequest

	var tooLarge *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		rec.Message = "invalid json"
	case errors.As(err, &tooLarge):
		rec.Message = fmt.Sprintf("must be at most %d bytes", tooLarge.Limit)
		status = http.StatusRequestEntityTooLarge
	case errors.As(err, &typeErr) && typeErr.Field != "":
		rec.Field = typeErr.Field
		rec.Message = "must be a " + typeErr.Type.String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result.FailWith[struct{}](rec).Envelope()); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}

// pathID parses the {id} path value. Malformed ids are reported as 0 so that
// the facade rejects them as illegal arguments.
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
