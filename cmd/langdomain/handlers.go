package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/langdomain/pkg/domainrouter"
	"github.com/dmitrymomot/langdomain/pkg/environment"
	"github.com/dmitrymomot/langdomain/pkg/httpserver"
	"github.com/dmitrymomot/langdomain/pkg/logger"
	"github.com/dmitrymomot/langdomain/pkg/requestid"
)

type handlerDeps struct {
	env            environment.Environment
	log            *slog.Logger
	routers        domainrouter.Provider
	checks         map[string]httpserver.Check
	middlewareOpts []domainrouter.MiddlewareOption
}

// newHandler mounts the probes outside the host guard and everything else behind it.
func newHandler(d handlerDeps) http.Handler {
	if d.log == nil {
		d.log = logger.Noop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(d.env))

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(d.log, 0, d.checks))

	r.Group(func(r chi.Router) {
		r.Use(requestid.Middleware)
		r.Use(domainrouter.Middleware(d.routers, d.middlewareOpts...))

		h := &api{routers: d.routers, log: d.log}
		r.Get("/", h.home)
		r.Get("/hosts", h.hosts)
		r.Route("/links", func(r chi.Router) {
			r.Get("/add", h.addLanguage)
			r.Get("/remove", h.removeLanguage)
			r.Get("/base", h.baseURL)
		})
	})

	return r
}

type api struct {
	routers domainrouter.Provider
	log     *slog.Logger
}

type homeResponse struct {
	Language        string `json:"language"`
	HomeURL         string `json:"home_url"`
	DefaultLanguage string `json:"default_language"`
}

func (a *api) home(w http.ResponseWriter, r *http.Request) {
	router := a.routers.Router()
	lang, _ := domainrouter.LanguageFromContext(r.Context())
	a.writeJSON(w, r, http.StatusOK, homeResponse{
		Language:        lang,
		HomeURL:         router.HomeURL(lang),
		DefaultLanguage: router.DefaultLanguage(),
	})
}

type hostsResponse struct {
	HomeHost        string            `json:"home_host"`
	DefaultLanguage string            `json:"default_language"`
	Languages       []string          `json:"languages"`
	Hosts           map[string]string `json:"hosts"`
}

func (a *api) hosts(w http.ResponseWriter, r *http.Request) {
	router := a.routers.Router()
	a.writeJSON(w, r, http.StatusOK, hostsResponse{
		HomeHost:        router.HomeHost(),
		DefaultLanguage: router.DefaultLanguage(),
		Languages:       router.Languages(),
		Hosts:           router.Hosts(),
	})
}

type linkResponse struct {
	URL      string `json:"url"`
	Language string `json:"language,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// addLanguage rewrites ?url= onto the domain of ?lang=, or of the current
// request's language when lang is omitted.
func (a *api) addLanguage(w http.ResponseWriter, r *http.Request) {
	raw, ok := a.requireURL(w, r)
	if !ok {
		return
	}
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang, _ = domainrouter.LanguageFromContext(r.Context())
	}
	a.writeJSON(w, r, http.StatusOK, linkResponse{
		URL:      a.routers.Router().AddLanguageToLink(raw, lang),
		Language: lang,
	})
}

func (a *api) removeLanguage(w http.ResponseWriter, r *http.Request) {
	raw, ok := a.requireURL(w, r)
	if !ok {
		return
	}
	router := a.routers.Router()
	a.writeJSON(w, r, http.StatusOK, linkResponse{
		URL:      router.RemoveLanguageFromLink(raw),
		Language: router.LanguageFromURL(raw),
	})
}

func (a *api) baseURL(w http.ResponseWriter, r *http.Request) {
	raw, ok := a.requireURL(w, r)
	if !ok {
		return
	}
	host := domainrouter.NormalizeRequestHost(r.Host)
	router := a.routers.Router()
	a.writeJSON(w, r, http.StatusOK, linkResponse{
		URL:      router.RewriteBaseURL(raw, host),
		Language: router.LanguageFromHost(host),
	})
}

func (a *api) requireURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		a.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "missing url parameter"})
		return "", false
	}
	return raw, true
}

func (a *api) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
	}
}
