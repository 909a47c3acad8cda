// Package worker runs the background jobs of the registry on river.
package worker

import (
	"context"
	"fmt"
	"registry/pkg/files"
	"registry/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

type Options struct {
	// MaxWorkers is the number of jobs of the default queue processed concurrently.
	MaxWorkers int
}

// Start registers the workers and starts processing jobs until ctx is done
// or the returned client is stopped.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	files files.Storage,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewOrphanFileWorker(files))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
