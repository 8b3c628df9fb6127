package domainrouter

import (
	"context"
	"log/slog"
)

type languageContextKey struct{}

// WithLanguage stores the language resolved for the current request.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the language stored by Middleware and whether one was stored.
// The language may be empty when the request host is registered with an empty language.
func LanguageFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageContextKey{}).(string)
	return lang, ok
}

// LoggerExtractor adds the request language as "lang" to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if lang, ok := LanguageFromContext(ctx); ok && lang != "" {
			return slog.String("lang", lang), true
		}
		return slog.Attr{}, false
	}
}
