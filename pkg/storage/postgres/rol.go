package postgres

import (
	"context"
	"registry/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	rolesTable = "roles"
)

func (p *PgSQL) RolByID(ctx context.Context, id domain.RolID) (*domain.Rol, error) {
	return p.rolWhere(ctx, goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) RolByName(ctx context.Context, name string) (*domain.Rol, error) {
	return p.rolWhere(ctx, goqu.I("name").Eq(name))
}

func (p *PgSQL) Roles(ctx context.Context) ([]domain.Rol, error) {
	var rows []PgRol
	if err := p.Builder.From(rolesTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, mapError(err, "could not fetch roles from pg")
	}

	out := make([]domain.Rol, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}

	return out, nil
}

func (p *PgSQL) rolWhere(ctx context.Context, where goqu.Expression) (*domain.Rol, error) {
	var row PgRol
	found, err := p.Builder.From(rolesTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, mapError(err, "could not fetch rol from pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
