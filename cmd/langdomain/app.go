package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/langdomain/pkg/config"
	"github.com/dmitrymomot/langdomain/pkg/domainrouter"
	"github.com/dmitrymomot/langdomain/pkg/domainsettings"
	"github.com/dmitrymomot/langdomain/pkg/environment"
	"github.com/dmitrymomot/langdomain/pkg/httpserver"
	"github.com/dmitrymomot/langdomain/pkg/logger"
	"github.com/dmitrymomot/langdomain/pkg/requestid"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"langdomain"`
	SettingsBackend string `env:"SETTINGS_BACKEND" envDefault:"file"`
	SettingsFile    string `env:"SETTINGS_FILE" envDefault:"domains.yaml"`
	RewriteMode     string `env:"LINK_REWRITE_MODE" envDefault:"structured"`
	PreservePath    bool   `env:"REDIRECT_PRESERVE_PATH" envDefault:"false"`
}

var errUnknownRewriteMode = errors.New("unknown link rewrite mode")

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	var reloadCfg domainsettings.ReloaderConfig
	if err := config.Load(&reloadCfg); err != nil {
		return err
	}
	var serverCfg httpserver.Config
	if err := config.Load(&serverCfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), domainrouter.LoggerExtractor()),
	)
	slog.SetDefault(log)

	mode, ok := domainrouter.ParseRewriteMode(cfg.RewriteMode)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownRewriteMode, cfg.RewriteMode)
	}

	backend, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	holder := domainrouter.NewHolder(nil)
	reloader := domainsettings.NewReloader(backend.store, holder, reloadCfg,
		domainsettings.WithReloaderLogger(log.With(logger.Store(cfg.SettingsBackend))),
		domainsettings.WithRouterOptions(domainrouter.WithRewriteMode(mode)),
	)
	if err := reloader.Reload(ctx); err != nil {
		backend.close()
		return fmt.Errorf("load language domains from %s: %w", cfg.SettingsBackend, err)
	}
	if reloadCfg.Interval > 0 {
		go func() { _ = reloader.Watch(ctx) }()
	}

	checks := backend.checks
	checks["settings"] = settingsCheck(holder)

	handler := newHandler(handlerDeps{
		env:     environment.Parse(cfg.Env),
		log:     log,
		routers: holder,
		checks:  checks,
		middlewareOpts: []domainrouter.MiddlewareOption{
			domainrouter.WithLogger(log),
			domainrouter.WithPreservePath(cfg.PreservePath),
		},
	})

	srv := httpserver.NewFromConfig(serverCfg,
		httpserver.WithLogger(log),
		httpserver.WithShutdownFunc(backend.close),
	)
	return srv.Run(ctx, handler)
}

var errSettingsNotLoaded = errors.New("language domains not loaded")

// settingsCheck fails while the current router has no registered hosts.
func settingsCheck(p domainrouter.Provider) httpserver.Check {
	return func(context.Context) error {
		if len(p.Router().Hosts()) == 0 {
			return errSettingsNotLoaded
		}
		return nil
	}
}
