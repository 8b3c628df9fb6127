// Package redis connects go-redis/v9 clients with retries and exposes a
// readiness probe.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := domainsettings.NewRedisStore(client, cfg.KeyPrefix)
package redis
