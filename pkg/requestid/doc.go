// Package requestid tags every request with an ID taken from X-Request-ID or
// generated as a UUIDv7, so redirects and log lines can be correlated.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
