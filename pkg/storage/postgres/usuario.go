package postgres

import (
	"context"
	"registry/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	usuariosTable = "usuarios"
)

func (p *PgSQL) StoreUsuario(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	var row PgUsuario
	row.FromDomain(u)

	var stored PgUsuario
	if _, err := p.Builder.Insert(usuariosTable).
		Rows(row).
		Returning(&PgUsuario{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapError(err, "could not store usuario into pg")
	}

	return stored.ToDomain()
}

// UpdateUsuario persists the mutable columns (verified, last_connection).
// Email, password and role are immutable after registration.
func (p *PgSQL) UpdateUsuario(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	var row PgUsuario
	row.FromDomain(u)

	var updated PgUsuario
	found, err := p.Builder.Update(usuariosTable).
		Set(goqu.Record{
			"verified":        row.Verified,
			"last_connection": row.LastConnection,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgUsuario{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, mapError(err, "could not update usuario in pg")
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain()
}

func (p *PgSQL) UsuarioByID(ctx context.Context, id domain.UsuarioID) (*domain.Usuario, error) {
	return p.usuarioWhere(ctx, goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) UsuarioByEmail(ctx context.Context, email domain.Email) (*domain.Usuario, error) {
	return p.usuarioWhere(ctx, goqu.I("email").Eq(email.String()))
}

func (p *PgSQL) usuarioWhere(ctx context.Context, where goqu.Expression) (*domain.Usuario, error) {
	var row PgUsuario
	found, err := p.Builder.From(usuariosTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, mapError(err, "could not fetch usuario from pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
