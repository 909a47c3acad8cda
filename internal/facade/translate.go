package facade

import (
	"context"
	"errors"
	"registry/pkg/domain"
	"registry/pkg/logger"
	"registry/pkg/metrics"
	"registry/pkg/result"
	"registry/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

const (
	msgUnexpected = "an unexpected error occurred, please try again later"
	msgEnrichment = "the operation succeeded but its result could not be loaded"
)

// duplicateMessages are the user-facing messages of uniqueness violations, by entity.
var duplicateMessages = map[string]string{ //nolint: gochecknoglobals
	"usuario": "email is already registered",
	"perfil":  "user already has a profile",
	"dni":     "dni is already registered",
}

// codes maps every error kind to its stable result code. Order matters: the
// first matching kind wins.
var codes = []struct { //nolint: gochecknoglobals
	kind serrors.Kind
	code string
}{
	{serrors.ErrValidation, result.CodeValidation},
	{serrors.ErrNotFound, result.CodeNotFound},
	{serrors.ErrDuplicate, result.CodeDuplicate},
	{serrors.ErrIllegalArgument, result.CodeIllegalArg},
	{serrors.ErrUnauthorized, result.CodeUnauthorized},
	{serrors.ErrInfrastructure, result.CodeInfrastructure},
}

// records converts err into error records. Multi-field validation failures
// yield one record per field; anything without a known kind becomes a
// generic failure without leaking its text.
func records(err error) []result.ErrorRecord {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		recs := make([]result.ErrorRecord, 0, len(verrs))
		for _, e := range verrs {
			recs = append(recs, result.ErrorRecord{Code: result.CodeValidation, Message: e.Message(), Field: e.Field})
		}

		return recs
	}

	code := ""
	for _, c := range codes {
		if errors.Is(err, c.kind) {
			code = c.code

			break
		}
	}
	if code == "" {
		return []result.ErrorRecord{{Code: result.CodeGeneric, Message: msgUnexpected}}
	}

	rec := result.ErrorRecord{Code: code, Message: err.Error()}
	if se, ok := serrors.Details(err); ok {
		rec.Field = se.Field
		if se.Message() != "" {
			rec.Message = se.Message()
		}
		if msg, ok := duplicateMessages[se.Entity]; ok && code == result.CodeDuplicate {
			rec.Message = msg
		}
	}
	if code == result.CodeInfrastructure {
		// the cause may carry driver or file system details
		rec.Field = ""
		rec.Message = "could not complete the operation"
		if se, ok := serrors.Details(err); ok && se.Message() != "" {
			rec.Message += ": " + se.Message()
		}
	}

	return []result.ErrorRecord{rec}
}

// fail logs err and converts it into a failed result. Caller mistakes are
// logged at info, infrastructure and unknown failures at error.
func fail[T any](ctx context.Context, op string, err error) result.Result[T] {
	recs := records(err)
	log := logger.Get(ctx).With(zap.String("operation", op), zap.Error(err))

	switch recs[0].Code {
	case result.CodeInfrastructure, result.CodeGeneric:
		log.Error("operation failed")
	default:
		log.Info("operation rejected", zap.String("code", recs[0].Code))
	}

	return result.FailMany[T](recs)
}

// enrichmentFailed reports a read that failed after a write committed.
func enrichmentFailed[T any](ctx context.Context, op string, err error) result.Result[T] {
	logger.Get(ctx).Error("could not assemble response after commit",
		zap.String("operation", op),
		zap.Error(err))

	return result.FailWith[T](result.ErrorRecord{Code: result.CodeInfrastructure, Message: msgEnrichment})
}

func invalid[T any](ctx context.Context, op string, v *violations) result.Result[T] {
	logger.Get(ctx).Info("request rejected",
		zap.String("operation", op),
		zap.Int("violations", len(v.records)))

	return result.FailMany[T](v.records)
}

func illegalID[T any](field string) result.Result[T] {
	return result.FailWith[T](result.ErrorRecord{
		Code:    result.CodeIllegalArg,
		Message: "must be a positive id",
		Field:   field,
	})
}

// observe records the outcome of a facade call. It is meant to be deferred
// with a pointer to the named result. A panic below the facade is recovered
// and reported as a generic failure.
func observe[T any](ctx context.Context, ops *metrics.Operations, op string, start time.Time, r *result.Result[T]) {
	if p := recover(); p != nil {
		logger.Get(ctx).Error("operation panicked",
			zap.String("operation", op),
			zap.Any("panic", p),
			zap.Stack("stack"))
		*r = result.FailWith[T](result.ErrorRecord{Code: result.CodeGeneric, Message: msgUnexpected})
	}

	code := ""
	if first, ok := r.FirstError(); ok {
		code = first.Code
	}
	ops.Observe(op, code, time.Since(start))
}
