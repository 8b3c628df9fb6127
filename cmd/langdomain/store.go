package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/langdomain/pkg/config"
	"github.com/dmitrymomot/langdomain/pkg/domainsettings"
	"github.com/dmitrymomot/langdomain/pkg/httpserver"
	"github.com/dmitrymomot/langdomain/pkg/logger"
	"github.com/dmitrymomot/langdomain/pkg/mongo"
	"github.com/dmitrymomot/langdomain/pkg/pg"
	"github.com/dmitrymomot/langdomain/pkg/redis"
)

var errUnknownBackend = errors.New("unknown settings backend")

// settingsBackend is an opened Store with its readiness checks and cleanup.
type settingsBackend struct {
	store  domainsettings.Store
	checks map[string]httpserver.Check
	close  func()
}

func openStore(ctx context.Context, cfg appConfig, log *slog.Logger) (settingsBackend, error) {
	b := settingsBackend{
		checks: make(map[string]httpserver.Check),
		close:  func() {},
	}

	switch cfg.SettingsBackend {
	case "file":
		b.store = domainsettings.NewFileStore(cfg.SettingsFile)

	case "env":
		b.store = domainsettings.NewEnvStore()

	case "redis":
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return b, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return b, err
		}
		b.store = domainsettings.NewRedisStore(client, rc.KeyPrefix)
		b.checks["redis"] = redis.Healthcheck(client)
		b.close = func() { _ = client.Close() }

	case "postgres":
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return b, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return b, err
		}
		if err := pg.Migrate(ctx, pool, pc, domainsettings.Migrations, log.With(logger.Component("migrations"))); err != nil {
			pool.Close()
			return b, err
		}
		b.store = domainsettings.NewPostgresStore(pool)
		b.checks["postgres"] = pg.Healthcheck(pool)
		b.close = pool.Close

	case "mongo":
		var mc mongo.Config
		if err := config.Load(&mc); err != nil {
			return b, err
		}
		db, err := mongo.ConnectDatabase(ctx, mc)
		if err != nil {
			return b, err
		}
		b.store = domainsettings.NewMongoStore(db, mc.Collection)
		b.checks["mongo"] = mongo.Healthcheck(db.Client())
		b.close = func() { _ = db.Client().Disconnect(context.WithoutCancel(ctx)) }

	default:
		return b, fmt.Errorf("%w: %q", errUnknownBackend, cfg.SettingsBackend)
	}

	log.InfoContext(ctx, "settings backend ready", logger.Store(cfg.SettingsBackend))
	return b, nil
}
