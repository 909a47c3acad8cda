package domain

import (
	"strings"

	"registry/pkg/serrors"
)

// RolID identifies a role in the catalog.
type RolID int64

// Rol is an immutable catalog entry.
type Rol struct {
	id   RolID
	name string
}

// NewRol builds a Rol; both id and name are required.
func NewRol(id RolID, name string) (Rol, error) {
	if id <= 0 {
		return Rol{}, serrors.Invalid(serrors.ErrValidation, "id", "rol id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Rol{}, serrors.Invalid(serrors.ErrValidation, "name", "rol name is required")
	}

	return Rol{id: id, name: name}, nil
}

// ID returns the catalog identifier.
func (r Rol) ID() RolID { return r.id }

// Name returns the role name.
func (r Rol) Name() string { return r.name }
