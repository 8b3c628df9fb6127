// Package pg opens pgx/v5 connection pools and applies goose migrations.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, domainsettings.Migrations, log); err != nil {
//		return err
//	}
//
// Healthcheck adapts the pool to the func(context.Context) error probes used
// by the readiness endpoint.
package pg
