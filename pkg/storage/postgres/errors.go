package postgres

import (
	"errors"
	"regexp"
	"registry/pkg/serrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// constraintTarget describes how a violated constraint is reported to callers.
type constraintTarget struct {
	entity string
	field  string
}

// uniqueConstraints maps unique constraint names to the duplicate error a
// service pre-check would have produced for the same collision.
var uniqueConstraints = map[string]constraintTarget{ //nolint: gochecknoglobals
	"usuarios_email_key":           {entity: "usuario", field: "email"},
	"perfiles_usuario_user_id_key": {entity: "perfil", field: "userId"},
	"perfiles_usuario_dni_key":     {entity: "dni", field: "dni"},
	"roles_name_key":               {entity: "rol", field: "name"},
}

// foreignKeys maps foreign key constraint names to the entity that failed to resolve.
var foreignKeys = map[string]constraintTarget{ //nolint: gochecknoglobals
	"perfiles_usuario_user_id_fkey":        {entity: "usuario", field: "userId"},
	"perfiles_usuario_photo_image_id_fkey": {entity: "image", field: "photoImageId"},
	"usuarios_role_id_fkey":                {entity: "rol", field: "roleId"},
}

// detailRe extracts the offending value from a Postgres error detail such as
// `Key (email)=(a@b.co) already exists.`
var detailRe = regexp.MustCompile(`^Key \((?:[^)]*)\)=\((.*)\)`)

func detailValue(detail string) string {
	m := detailRe.FindStringSubmatch(detail)
	if len(m) != 2 {
		return ""
	}

	return m[1]
}

// mapError translates constraint violations into semantic errors and wraps
// anything else as an infrastructure failure described by action.
func mapError(err error, action string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if t, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
				return serrors.Duplicate(t.entity, detailValue(pgErr.Detail), t.field).WithCause(err)
			}

			return serrors.Wrap(serrors.ErrDuplicate, err, "%s", action)
		case pgerrcode.ForeignKeyViolation:
			if t, ok := foreignKeys[pgErr.ConstraintName]; ok {
				return serrors.NotFound(t.entity, detailValue(pgErr.Detail)).WithField(t.field).WithCause(err)
			}

			return serrors.Wrap(serrors.ErrNotFound, err, "%s", action)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return serrors.Wrap(serrors.ErrValidation, err, "%s", action)
		}
	}

	return serrors.Infra(err, "%s", action)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
