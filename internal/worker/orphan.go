package worker

import (
	"context"
	"errors"
	"fmt"
	"registry/internal/service"
	"registry/pkg/files"
	"registry/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// OrphanFileWorker deletes stored files that lost their image row but could
// not be removed right after the commit. A file that is already gone counts
// as deleted.
type OrphanFileWorker struct {
	river.WorkerDefaults[service.OrphanFileArgs]

	storage files.Storage
}

func NewOrphanFileWorker(storage files.Storage) *OrphanFileWorker {
	return &OrphanFileWorker{storage: storage}
}

// Work deletes job.Args.Path. Paths the storage rejects outright cancel the
// job; any other failure is retried by river.
func (w *OrphanFileWorker) Work(ctx context.Context, job *river.Job[service.OrphanFileArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("job_id", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("path", job.Args.Path))

	existed, err := w.storage.Delete(ctx, job.Args.Path)
	if err != nil {
		if errors.Is(err, files.ErrInvalidPath) {
			logger.Error(ctx, "orphan file path rejected, giving up", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}
		logger.Warn(ctx, "could not delete orphan file", zap.Error(err))

		return fmt.Errorf("could not delete orphan file: %w", err)
	}

	if existed {
		logger.Info(ctx, "orphan file deleted")
	} else {
		logger.Info(ctx, "orphan file already gone")
	}

	return nil
}
