// Package logger builds log/slog loggers for langdomain services.
//
// New returns a *slog.Logger configured through functional options. Records
// are enriched at log time by ContextExtractor functions, which is how the
// request ID and the resolved language end up on every line written while a
// request is served:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "langdomain"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			domainrouter.LoggerExtractor(),
//		),
//	)
//
// The attribute helpers (Host, Language, RedirectTarget, Store, Error, ...)
// keep key names consistent between packages.
package logger
