package domainrouter

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Domain binds a language identifier to the full domain URL configured for it.
type Domain struct {
	Language string
	URL      string
}

// Config is a read-only snapshot of the site settings the router is built from.
type Config struct {
	// HomeURL is the canonical, language-neutral base URL of the site.
	HomeURL string
	// DefaultLanguage is the fallback language used as redirect target.
	DefaultLanguage string
	// Domains lists the per-language domains in configuration order.
	Domains []Domain
}

// Router resolves languages from hosts and rewrites links between the
// canonical home host and the per-language hosts.
//
// A Router is immutable once New returns and is safe for concurrent use.
// Configuration changes are applied by building a new Router, see Holder.
type Router struct {
	homeURL         string
	homeHost        string
	defaultLanguage string

	languages []string          // configuration order
	domains   map[string]string // language -> configured domain URL
	hosts     map[string]string // language -> bare host, "" when malformed

	mode          RewriteMode
	addPattern    *regexp.Regexp
	removePattern *regexp.Regexp
}

// New builds a Router from cfg. It never fails: a domain whose host cannot be
// extracted is registered with an empty host and simply never matches.
// When a language is listed twice the last URL wins and the first position is kept.
func New(cfg Config, opts ...Option) *Router {
	r := &Router{
		homeURL:         strings.TrimSpace(cfg.HomeURL),
		defaultLanguage: cfg.DefaultLanguage,
		languages:       make([]string, 0, len(cfg.Domains)),
		domains:         make(map[string]string, len(cfg.Domains)),
		hosts:           make(map[string]string, len(cfg.Domains)),
		mode:            RewriteStructured,
	}
	r.homeHost = Host(r.homeURL)

	for _, d := range cfg.Domains {
		if _, seen := r.domains[d.Language]; !seen {
			r.languages = append(r.languages, d.Language)
		}
		r.domains[d.Language] = d.URL
		r.hosts[d.Language] = Host(d.URL)
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.mode == RewriteLegacy {
		r.compileLegacyPatterns()
	}

	return r
}

// Router returns r itself so a plain Router can be used wherever a Provider is expected.
func (r *Router) Router() *Router {
	return r
}

// Hosts returns a copy of the language -> host registry.
func (r *Router) Hosts() map[string]string {
	return maps.Clone(r.hosts)
}

// Languages returns the configured languages in configuration order.
func (r *Router) Languages() []string {
	return slices.Clone(r.languages)
}

// HomeHost returns the host of the canonical home URL.
func (r *Router) HomeHost() string {
	return r.homeHost
}

// DefaultLanguage returns the configured fallback language.
func (r *Router) DefaultLanguage() string {
	return r.defaultLanguage
}

// HasKnownHost reports whether host equals one of the registered hosts.
// The comparison is exact; normalize Host header values with NormalizeRequestHost first.
func (r *Router) HasKnownHost(host string) bool {
	for _, lang := range r.languages {
		if r.hosts[lang] == host {
			return true
		}
	}
	return false
}

// DefaultHost returns the host registered for the default language,
// i.e. the target visitors on an unknown host are sent to.
func (r *Router) DefaultHost() string {
	return r.hosts[r.defaultLanguage]
}

// RedirectURL returns the protocol-relative redirect target ("//example.com")
// for the default language, or "" when no default host is known.
func (r *Router) RedirectURL() string {
	host := r.DefaultHost()
	if host == "" {
		return ""
	}
	return "//" + host
}

// LanguageFromHost returns the language registered for host, or "" on a miss.
// A miss is an expected outcome, not an error.
func (r *Router) LanguageFromHost(host string) string {
	if host == "" {
		return ""
	}
	for _, lang := range r.languages {
		if r.hosts[lang] == host {
			return lang
		}
	}
	return ""
}

// LanguageFromURL parses the host out of rawURL and resolves it like LanguageFromHost.
func (r *Router) LanguageFromURL(rawURL string) string {
	host, ok := ParseHost(rawURL)
	if !ok {
		return ""
	}
	return r.LanguageFromHost(host)
}

// HomeURL returns the domain configured for lang, falling back to the
// canonical home URL. The result always ends with exactly one slash.
func (r *Router) HomeURL(lang string) string {
	if u := r.domains[lang]; u != "" {
		return trailingSlash(u)
	}
	return trailingSlash(r.homeURL)
}

// trailingSlash strips any trailing slashes or backslashes and appends one slash.
func trailingSlash(s string) string {
	return strings.TrimRight(s, `/\`) + "/"
}
