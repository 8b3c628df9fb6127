package domainsettings

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/dmitrymomot/langdomain/pkg/domainrouter"
	"github.com/dmitrymomot/langdomain/pkg/logger"
)

// ReloaderConfig controls how often settings are re-read.
type ReloaderConfig struct {
	// Interval between successful reloads. Zero disables periodic reloads.
	Interval time.Duration `env:"SETTINGS_RELOAD_INTERVAL" envDefault:"1m"`
	// InitialBackoff is the delay after the first failure.
	InitialBackoff time.Duration `env:"SETTINGS_RELOAD_INITIAL_BACKOFF" envDefault:"5s"`
	// MaxBackoff caps the delay between failed attempts.
	MaxBackoff time.Duration `env:"SETTINGS_RELOAD_MAX_BACKOFF" envDefault:"5m"`
	// Timeout bounds a single store read.
	Timeout time.Duration `env:"SETTINGS_RELOAD_TIMEOUT" envDefault:"10s"`
}

// Reloader reads settings from a Store and swaps freshly built routers into a Holder.
// A failed load or invalid settings keep the previous router in place.
type Reloader struct {
	store      Store
	holder     *domainrouter.Holder
	cfg        ReloaderConfig
	log        *slog.Logger
	routerOpts []domainrouter.Option
	onReload   func(*domainrouter.Router)
}

// ReloaderOption configures a Reloader.
type ReloaderOption func(*Reloader)

// WithReloaderLogger sets the logger. Defaults to a no-op logger.
func WithReloaderLogger(l *slog.Logger) ReloaderOption {
	return func(r *Reloader) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRouterOptions are passed to domainrouter.New for every router built.
func WithRouterOptions(opts ...domainrouter.Option) ReloaderOption {
	return func(r *Reloader) {
		r.routerOpts = append(r.routerOpts, opts...)
	}
}

// WithOnReload registers fn to be called after each successful swap.
func WithOnReload(fn func(*domainrouter.Router)) ReloaderOption {
	return func(r *Reloader) {
		r.onReload = fn
	}
}

// NewReloader returns a Reloader feeding holder from store.
func NewReloader(store Store, holder *domainrouter.Holder, cfg ReloaderConfig, opts ...ReloaderOption) *Reloader {
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 5 * time.Second
	}
	if cfg.MaxBackoff < cfg.InitialBackoff {
		cfg.MaxBackoff = cfg.InitialBackoff
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	r := &Reloader{
		store:  store,
		holder: holder,
		cfg:    cfg,
		log:    logger.Noop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("domainsettings.reloader"))
	return r
}

// Reload performs a single load, validate and swap.
func (r *Reloader) Reload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	start := time.Now()
	snap, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	router, err := Build(snap, r.routerOpts...)
	if err != nil {
		return err
	}
	for _, warn := range Warnings(snap) {
		r.log.WarnContext(ctx, "questionable language domain entry", logger.Error(warn))
	}

	r.holder.Set(router)
	r.log.InfoContext(ctx, "language domains reloaded",
		slog.Int("domains", len(snap.Domains)),
		logger.Language(snap.DefaultLanguage),
		logger.Duration(time.Since(start)),
	)
	if r.onReload != nil {
		r.onReload(router)
	}
	return nil
}

// Start loads settings immediately and then every Interval until ctx is done.
// Failures back off exponentially with jitter. Start returns nil once ctx is cancelled.
func (r *Reloader) Start(ctx context.Context) error {
	failures := 0
	if err := r.Reload(ctx); err != nil {
		failures++
		r.log.ErrorContext(ctx, "initial settings load failed", logger.Error(err))
	}
	return r.watch(ctx, failures)
}

// Watch is Start without the initial load, for callers that already ran
// Reload themselves, e.g. to fail fast at startup.
func (r *Reloader) Watch(ctx context.Context) error {
	return r.watch(ctx, 0)
}

func (r *Reloader) watch(ctx context.Context, failures int) error {
	if r.cfg.Interval <= 0 {
		return nil
	}

	for {
		wait := r.cfg.Interval
		if failures > 0 {
			wait = backoff(r.cfg.InitialBackoff, r.cfg.MaxBackoff, failures)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if err := r.Reload(ctx); err != nil {
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return nil
			}
			failures++
			r.log.WarnContext(ctx, "settings reload failed, keeping previous router",
				logger.Error(err),
				logger.Attempt(failures),
			)
			continue
		}

		if failures > 0 {
			r.log.InfoContext(ctx, "settings reload recovered", logger.Attempt(failures))
		}
		failures = 0
	}
}

// backoff returns initial*2^(failures-1) capped at maxDelay, with +/-20% jitter.
func backoff(initial, maxDelay time.Duration, failures int) time.Duration {
	d := time.Duration(float64(initial) * math.Pow(2, float64(failures-1)))
	if d > maxDelay || d <= 0 {
		d = maxDelay
	}

	const jitterFrac = 0.2
	jitter := time.Duration((rand.Float64()*2 - 1) * jitterFrac * float64(d))
	return d + jitter
}
