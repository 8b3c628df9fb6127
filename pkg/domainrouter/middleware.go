package domainrouter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/langdomain/pkg/logger"
)

type middlewareConfig struct {
	skipPaths    []string
	status       int
	preservePath bool
	logger       *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithSkipPaths lists paths served on any host, e.g. health checks. A path
// also covers everything below it: "/healthz" skips "/healthz/db" but not "/healthzz".
func WithSkipPaths(paths ...string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.skipPaths = append(c.skipPaths, paths...)
	}
}

// WithRedirectStatus overrides the redirect status. Only 3xx codes are accepted.
func WithRedirectStatus(code int) MiddlewareOption {
	return func(c *middlewareConfig) {
		if code >= 300 && code < 400 {
			c.status = code
		}
	}
}

// WithPreservePath appends the request URI to the redirect target instead of
// sending visitors to the home page of the default language.
func WithPreservePath(preserve bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.preservePath = preserve
	}
}

// WithLogger sets the logger used to report redirects.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware guards requests by host. Requests on a registered host continue
// with their language stored in the context (see LanguageFromContext).
// Requests on any other host are redirected to the default language's host
// and not passed on.
//
// The router is fetched from p on every request, so a Holder swapped by a
// reloader takes effect immediately.
func Middleware(p Provider, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		logger: logger.Noop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipPath(r.URL.Path, cfg.skipPaths) {
				next.ServeHTTP(w, r)
				return
			}

			host := NormalizeRequestHost(r.Host)
			decision := p.Router().OnRequest(host)

			if decision.Redirect() {
				target := decision.Location()
				if cfg.preservePath {
					target += r.URL.RequestURI()
				}
				status := decision.Status
				if cfg.status != 0 {
					status = cfg.status
				}

				cfg.logger.DebugContext(r.Context(), "redirecting unknown host",
					logger.Host(host),
					logger.RedirectTarget(target),
				)
				http.Redirect(w, r, target, status)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), decision.Language)))
		})
	}
}

func skipPath(path string, skip []string) bool {
	for _, p := range skip {
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			if path == "/" || path == "" {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
