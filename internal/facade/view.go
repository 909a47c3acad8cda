package facade

import (
	"registry/pkg/domain"
	"time"
)

type UsuarioView struct {
	ID             int64       `json:"id"`
	Email          string      `json:"email"`
	RoleID         int64       `json:"roleId"`
	RoleName       string      `json:"roleName"`
	Verified       bool        `json:"verified"`
	LastConnection *time.Time  `json:"lastConnection,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	Perfil         *PerfilView `json:"perfil,omitempty"`
}

type PerfilView struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	SexID           int64     `json:"sexId"`
	DNI             *string   `json:"dni,omitempty"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	BirthDate       string    `json:"birthDate"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	AddressID       *int64    `json:"addressId,omitempty"`
	SocialNetworkID *int64    `json:"socialNetworkId,omitempty"`
	PhotoImageID    *int64    `json:"photoImageId,omitempty"`
	Verified        bool      `json:"verified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

// SessionView is returned by a successful login. Token is empty when the
// process has no session signing key.
type SessionView struct {
	Token     string      `json:"token,omitempty"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
	Usuario   UsuarioView `json:"usuario"`
}

func usuarioView(u *domain.Usuario, rol *domain.Rol, perfil *domain.PerfilUsuario) UsuarioView {
	v := UsuarioView{
		ID:             int64(u.ID()),
		Email:          u.Email().String(),
		RoleID:         int64(u.RoleID()),
		Verified:       u.Verified(),
		LastConnection: u.LastConnection(),
		CreatedAt:      u.CreatedAt(),
	}
	if rol != nil {
		v.RoleName = rol.Name()
	}
	if perfil != nil {
		pv := perfilView(perfil)
		v.Perfil = &pv
	}

	return v
}

func perfilView(p *domain.PerfilUsuario) PerfilView {
	f := p.Fields()
	v := PerfilView{
		ID:              int64(p.ID()),
		UserID:          int64(f.UserID),
		SexID:           int64(f.SexID),
		DNI:             f.DNI,
		Name:            f.Name,
		Surname:         f.Surname,
		BirthDate:       f.BirthDate.Format(time.DateOnly),
		Email:           f.Email.String(),
		Phone:           f.Phone,
		AddressID:       f.AddressID,
		SocialNetworkID: f.SocialNetworkID,
		Verified:        p.Verified(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
	if f.PhotoImageID != nil {
		id := int64(*f.PhotoImageID)
		v.PhotoImageID = &id
	}

	return v
}
