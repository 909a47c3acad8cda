package service

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// OrphanFileArgs asks a worker to delete a stored file that no row references
// anymore.
type OrphanFileArgs struct {
	// Path is the relative file storage path. It is unique so a file is never
	// scheduled twice while a job for it is still pending.
	Path string `json:"path" river:"unique"`

	maxAttempts int
}

func (args OrphanFileArgs) Kind() string { return "DeleteOrphanFileJob" }

func (args OrphanFileArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// NewOrphanFileArgs builds the job arguments for path.
func NewOrphanFileArgs(path string, maxAttempts int) OrphanFileArgs {
	return OrphanFileArgs{Path: path, maxAttempts: maxAttempts}
}
