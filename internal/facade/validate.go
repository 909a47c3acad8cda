package facade

import (
	"errors"
	"fmt"
	"reflect"
	"registry/pkg/result"
	"registry/pkg/serrors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// newValidator returns a validator reporting fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return v
}

// violations collects every failed rule of a request, at most one per field.
type violations struct {
	records []result.ErrorRecord
	fields  map[string]bool
}

func (v *violations) add(field, msg string) {
	if v.fields == nil {
		v.fields = map[string]bool{}
	}
	if v.fields[field] {
		return
	}
	v.fields[field] = true
	v.records = append(v.records, result.ErrorRecord{Code: result.CodeValidation, Message: msg, Field: field})
}

// addErr records err under its own field when it carries one.
func (v *violations) addErr(field string, err error) {
	if err == nil {
		return
	}
	if se, ok := serrors.Details(err); ok {
		if se.Field != "" {
			field = se.Field
		}
		v.add(field, se.Message())

		return
	}
	v.add(field, err.Error())
}

// check runs rule only when field passed the struct tags, so one field never
// reports twice.
func (v *violations) check(field string, rule func() error) {
	if v.fields[field] {
		return
	}
	v.addErr(field, rule())
}

func (v *violations) empty() bool { return len(v.records) == 0 }

// structErrors runs the struct tags of req.
func (v *violations) structErrors(validate *validator.Validate, req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("could not validate request: %w", err)
	}
	for _, fe := range verrs {
		v.add(fe.Field(), formatFieldError(fe))
	}

	return nil
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email"
	case "eqfield":
		return "must match " + lowerFirst(param)
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + param + " characters long"
		}

		return "must be at least " + param
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters long"
		}

		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), param)
		}

		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// parseBirthDate parses a YYYY-MM-DD date and rejects dates after today.
func parseBirthDate(s string, today time.Time) (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, serrors.Invalid(serrors.ErrInvalidFormat, "birthDate", "must be a date formatted as YYYY-MM-DD")
	}
	if d.After(today) {
		return time.Time{}, serrors.Invalid(serrors.ErrValidation, "birthDate", "cannot be in the future")
	}

	return d, nil
}
