package postgres

import (
	"context"
	"registry/pkg/domain"
	"registry/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
)

const (
	imagesTable = "images"
)

func (p *PgSQL) StoreImage(ctx context.Context, img domain.Image) (*domain.Image, error) {
	var stored PgImage
	if _, err := p.Builder.Insert(imagesTable).
		Rows(PgImage{Link: img.Link}).
		Returning(&PgImage{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapError(err, "could not store image into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ImageByID(ctx context.Context, id domain.ImageID) (*domain.Image, error) {
	var row PgImage
	found, err := p.Builder.From(imagesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, mapError(err, "could not fetch image from pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteImage removes the row. It fails with a not-found style error when a
// profile still references the image.
func (p *PgSQL) DeleteImage(ctx context.Context, id domain.ImageID) (bool, error) {
	res, err := p.Builder.Delete(imagesTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if isForeignKeyViolation(err) {
		return false, serrors.Wrap(serrors.ErrIllegalArgument, err, "image %d is still referenced", id)
	}
	if err != nil {
		return false, mapError(err, "could not delete image from pg")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, mapError(err, "could not read deleted image count")
	}

	return n > 0, nil
}
