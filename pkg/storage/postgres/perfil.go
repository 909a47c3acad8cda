package postgres

import (
	"context"
	"registry/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	perfilesTable = "perfiles_usuario"
)

func (p *PgSQL) StorePerfil(ctx context.Context, perfil *domain.PerfilUsuario) (*domain.PerfilUsuario, error) {
	var row PgPerfil
	row.FromDomain(perfil)

	var stored PgPerfil
	if _, err := p.Builder.Insert(perfilesTable).
		Rows(row).
		Returning(&PgPerfil{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapError(err, "could not store perfil into pg")
	}

	return stored.ToDomain()
}

// UpdatePerfil replaces every mutable column of the profile and stamps
// updated_at. user_id and created_at never change.
func (p *PgSQL) UpdatePerfil(ctx context.Context, perfil *domain.PerfilUsuario) (*domain.PerfilUsuario, error) {
	var row PgPerfil
	row.FromDomain(perfil)

	var updated PgPerfil
	found, err := p.Builder.Update(perfilesTable).
		Set(goqu.Record{
			"sex_id":            row.SexID,
			"dni":               row.DNI,
			"name":              row.Name,
			"surname":           row.Surname,
			"birth_date":        row.BirthDate,
			"email":             row.Email,
			"phone":             row.Phone,
			"address_id":        row.AddressID,
			"social_network_id": row.SocialNetworkID,
			"photo_image_id":    row.PhotoImageID,
			"verified":          row.Verified,
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgPerfil{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, mapError(err, "could not update perfil in pg")
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain()
}

func (p *PgSQL) PerfilByID(ctx context.Context, id domain.PerfilID) (*domain.PerfilUsuario, error) {
	return p.perfilWhere(ctx, goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) PerfilByUserID(ctx context.Context, userID domain.UsuarioID) (*domain.PerfilUsuario, error) {
	return p.perfilWhere(ctx, goqu.I("user_id").Eq(int64(userID)))
}

func (p *PgSQL) PerfilByDNI(ctx context.Context, dni string) (*domain.PerfilUsuario, error) {
	return p.perfilWhere(ctx, goqu.I("dni").Eq(dni))
}

func (p *PgSQL) perfilWhere(ctx context.Context, where goqu.Expression) (*domain.PerfilUsuario, error) {
	var row PgPerfil
	found, err := p.Builder.From(perfilesTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, mapError(err, "could not fetch perfil from pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
