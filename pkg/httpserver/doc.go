// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts and health-check handlers.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or
// Shutdown is called, then drains in-flight requests within the shutdown
// timeout. Errors are wrapped with ErrStart and ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithShutdownFunc(func() { _ = client.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler back the /healthz and /readyz probes.
package httpserver
