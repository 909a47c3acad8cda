package postgres

import (
	"database/sql"
	"fmt"
	"registry/pkg/domain"
	"time"
)

type PgUsuario struct {
	ID             int64        `db:"id"              goqu:"skipinsert"`
	Email          string       `db:"email"`
	PasswordHash   string       `db:"password_hash"`
	RoleID         int64        `db:"role_id"`
	Verified       bool         `db:"verified"`
	LastConnection sql.NullTime `db:"last_connection"`
	CreatedAt      time.Time    `db:"created_at"      goqu:"skipinsert"`
}

func (p *PgUsuario) ToDomain() (*domain.Usuario, error) {
	email, err := domain.NewEmail(p.Email)
	if err != nil {
		return nil, fmt.Errorf("stored usuario %d has an invalid email: %w", p.ID, err)
	}
	password, err := domain.PasswordFromHash(p.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("stored usuario %d has an invalid password: %w", p.ID, err)
	}

	var lastConnection *time.Time
	if p.LastConnection.Valid {
		t := p.LastConnection.Time.UTC()
		lastConnection = &t
	}

	return domain.RestoreUsuario(
		domain.UsuarioID(p.ID),
		email,
		password,
		domain.RolID(p.RoleID),
		p.Verified,
		lastConnection,
		p.CreatedAt,
	), nil
}

func (p *PgUsuario) FromDomain(u *domain.Usuario) {
	*p = PgUsuario{
		ID:           int64(u.ID()),
		Email:        u.Email().String(),
		PasswordHash: u.Password().Hash(),
		RoleID:       int64(u.RoleID()),
		Verified:     u.Verified(),
		CreatedAt:    u.CreatedAt(),
	}
	if lc := u.LastConnection(); lc != nil {
		p.LastConnection = sql.NullTime{Time: *lc, Valid: true}
	}
}

type PgPerfil struct {
	ID              int64          `db:"id"                goqu:"skipinsert"`
	UserID          int64          `db:"user_id"`
	SexID           int64          `db:"sex_id"`
	DNI             sql.NullString `db:"dni"`
	Name            string         `db:"name"`
	Surname         string         `db:"surname"`
	BirthDate       time.Time      `db:"birth_date"`
	Email           string         `db:"email"`
	Phone           sql.NullString `db:"phone"`
	AddressID       sql.NullInt64  `db:"address_id"`
	SocialNetworkID sql.NullInt64  `db:"social_network_id"`
	PhotoImageID    sql.NullInt64  `db:"photo_image_id"`
	Verified        bool           `db:"verified"`
	CreatedAt       time.Time      `db:"created_at"        goqu:"skipinsert"`
	UpdatedAt       sql.NullTime   `db:"updated_at"        goqu:"skipinsert"`
}

func (p *PgPerfil) ToDomain() (*domain.PerfilUsuario, error) {
	email, err := domain.NewEmail(p.Email)
	if err != nil {
		return nil, fmt.Errorf("stored perfil %d has an invalid email: %w", p.ID, err)
	}

	f := domain.PerfilFields{
		UserID:          domain.UsuarioID(p.UserID),
		SexID:           domain.SexID(p.SexID),
		DNI:             nullStringPtr(p.DNI),
		Name:            p.Name,
		Surname:         p.Surname,
		BirthDate:       time.Date(p.BirthDate.Year(), p.BirthDate.Month(), p.BirthDate.Day(), 0, 0, 0, 0, time.UTC),
		Email:           email,
		Phone:           nullStringPtr(p.Phone),
		AddressID:       nullInt64Ptr(p.AddressID),
		SocialNetworkID: nullInt64Ptr(p.SocialNetworkID),
	}
	if p.PhotoImageID.Valid {
		id := domain.ImageID(p.PhotoImageID.Int64)
		f.PhotoImageID = &id
	}

	return domain.RestorePerfilUsuario(domain.PerfilID(p.ID), f, p.Verified, p.CreatedAt, p.UpdatedAt.Time), nil
}

func (p *PgPerfil) FromDomain(perfil *domain.PerfilUsuario) {
	f := perfil.Fields()
	*p = PgPerfil{
		ID:              int64(perfil.ID()),
		UserID:          int64(f.UserID),
		SexID:           int64(f.SexID),
		DNI:             toNullString(f.DNI),
		Name:            f.Name,
		Surname:         f.Surname,
		BirthDate:       f.BirthDate,
		Email:           f.Email.String(),
		Phone:           toNullString(f.Phone),
		AddressID:       toNullInt64(f.AddressID),
		SocialNetworkID: toNullInt64(f.SocialNetworkID),
		Verified:        perfil.Verified(),
		CreatedAt:       perfil.CreatedAt(),
	}
	if f.PhotoImageID != nil {
		p.PhotoImageID = sql.NullInt64{Int64: int64(*f.PhotoImageID), Valid: true}
	}
}

type PgRol struct {
	ID   int64  `db:"id"   goqu:"skipinsert"`
	Name string `db:"name"`
}

func (p *PgRol) ToDomain() (*domain.Rol, error) {
	r, err := domain.NewRol(domain.RolID(p.ID), p.Name)
	if err != nil {
		return nil, fmt.Errorf("stored rol %d is invalid: %w", p.ID, err)
	}

	return &r, nil
}

type PgImage struct {
	ID        int64     `db:"id"         goqu:"skipinsert"`
	Link      string    `db:"link"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgImage) ToDomain() *domain.Image {
	return &domain.Image{ID: domain.ImageID(p.ID), Link: p.Link}
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String

	return &v
}

func nullInt64Ptr(i sql.NullInt64) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64

	return &v
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func toNullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *i, Valid: true}
}
