package main

import (
	"context"
	"registry/internal/config"
	"registry/internal/facade"
	"registry/internal/service"
	"registry/pkg/files"
	"registry/pkg/files/gcs"
	"registry/pkg/files/local"
	"registry/pkg/logger"
	"registry/pkg/metrics"
	"registry/pkg/session"
	"registry/pkg/storage/postgres"

	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getFiles creates the configured file storage along with its cleanup function.
func getFiles(ctx context.Context, cfg *config.Config) (files.Storage, func()) {
	switch cfg.Files.Driver {
	case config.FilesDriverGCS:
		g, err := gcs.New(ctx, gcs.Options{
			Bucket:          cfg.Files.Bucket,
			CredentialsFile: cfg.Files.CredentialsFile,
			Prefix:          cfg.Files.Prefix,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create gcs file storage", zap.Error(err))
		}

		return g, func() {
			if err := g.Close(); err != nil {
				logger.Warn(ctx, "could not close gcs client", zap.Error(err))
			}
		}
	default:
		l, err := local.New(cfg.Files.Root)
		if err != nil {
			logger.Fatal(ctx, "could not create local file storage", zap.Error(err))
		}

		return l, func() {}
	}
}

// getSessions returns the session manager, or nil when no signing key is configured.
func getSessions(ctx context.Context, cfg *config.Config) *session.Manager {
	if cfg.Session.PrivateKey == "" {
		logger.Warn(ctx, "session private key is not configured, logins will not issue tokens")

		return nil
	}

	m, err := session.New(session.Options{
		PrivateKey: cfg.Session.PrivateKey,
		Issuer:     cfg.Session.Issuer,
		TTL:        cfg.Session.TTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create session manager", zap.Error(err))
	}

	return m
}

type app struct {
	storage  *postgres.PgSQL
	files    files.Storage
	sessions *session.Manager
	auth     facade.AuthFacade
	perfil   facade.PerfilFacade
}

// newApp builds the services and facades on top of postgres and the
// configured file storage. The returned func releases both.
func newApp(ctx context.Context, cfg *config.Config) (*app, func()) {
	strg, closeStrg := getPostgres(ctx, cfg)
	fileStrg, closeFiles := getFiles(ctx, cfg)
	closeAll := func() {
		closeFiles()
		closeStrg()
	}

	serviceOptions := service.NewOptions(cfg)
	roles := service.NewRolService(strg, serviceOptions)
	services := facade.Services{
		Usuarios: service.NewUsuarioService(strg, roles, serviceOptions),
		Perfiles: service.NewPerfilUsuarioService(strg, fileStrg, serviceOptions),
		Roles:    roles,
	}

	ops, err := metrics.NewOperations(nil)
	if err != nil {
		logger.Fatal(ctx, "could not register facade metrics", zap.Error(err))
	}
	facadeOptions, err := facade.NewOptions(cfg, ops)
	if err != nil {
		logger.Fatal(ctx, "could not build facade options", zap.Error(err))
	}

	sessions := getSessions(ctx, cfg)
	// keep the interface nil when no manager is configured
	var issuer facade.SessionIssuer
	if sessions != nil {
		issuer = sessions
	}

	return &app{
		storage:  strg,
		files:    fileStrg,
		sessions: sessions,
		auth:     facade.NewAuthFacade(strg, services, issuer, facadeOptions),
		perfil:   facade.NewPerfilFacade(strg, services, facadeOptions),
	}, closeAll
}
