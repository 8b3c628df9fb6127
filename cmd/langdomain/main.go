// Command langdomain serves language domain routing for a multi-domain site:
// visitors on unknown hosts are redirected to the default language's domain,
// and JSON endpoints expose host resolution and link rewriting.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/langdomain/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("langdomain stopped", logger.Error(err))
		os.Exit(1)
	}
}
