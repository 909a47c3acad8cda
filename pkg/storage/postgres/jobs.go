package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob enqueues a River job through the underlying database handle.
//
// Inside a transaction (DB is a *sql.Tx) the job is inserted with InsertTx,
// so it only becomes visible to workers once the surrounding transaction
// commits, and disappears if it rolls back. Outside a transaction the job is
// inserted immediately.
//
// The returned bool is false when River skipped the insert as a duplicate of
// a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if tx, ok := p.DB.(*sql.Tx); ok {
		client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}

		res, err := client.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, mapError(err, "could not insert job")
		}

		return !res.UniqueSkippedAsDuplicate, nil
	}

	db, ok := p.DB.(*sql.DB)
	if !ok {
		return false, fmt.Errorf("unsupported executor %T for job insertion", p.DB)
	}

	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := client.Insert(ctx, args, opts)
	if err != nil {
		return false, mapError(err, "could not insert job")
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
