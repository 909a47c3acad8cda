package service

import (
	"registry/internal/config"
	"time"
)

// Options configure the services. They are typically derived from the
// application configuration.
type Options struct {
	// DefaultRole is the role name assigned to newly registered users.
	DefaultRole string
	// RoleCacheTTL is how long role lookups are served from memory.
	RoleCacheTTL time.Duration
	// OrphanFileMaxAttempts bounds the retries of the orphan file cleanup job.
	OrphanFileMaxAttempts int
	// Now is the clock used to stamp last connections.
	Now func() time.Time
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultRole:           cfg.Registration.DefaultRole,
		RoleCacheTTL:          cfg.Registration.RoleCacheTTL,
		OrphanFileMaxAttempts: cfg.Worker.MaxAttempts,
		Now:                   time.Now,
	}
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now().UTC()
	}

	return o.Now().UTC()
}
