package domainrouter

import "net/http"

// Action tells the host environment what to do with an inbound request.
type Action int

const (
	// Proceed lets the request continue with the resolved language.
	Proceed Action = iota
	// RedirectTo asks the caller to redirect to Decision.Host and stop processing.
	RedirectTo
)

func (a Action) String() string {
	switch a {
	case Proceed:
		return "proceed"
	case RedirectTo:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the outcome of OnRequest.
type Decision struct {
	Action   Action
	Language string // set for Proceed, may be empty
	Host     string // redirect target host, set for RedirectTo
	Status   int    // HTTP status for RedirectTo
}

// Redirect reports whether the decision asks for a redirect.
func (d Decision) Redirect() bool {
	return d.Action == RedirectTo
}

// Location returns the protocol-relative redirect location ("//example.com").
func (d Decision) Location() string {
	if d.Host == "" {
		return ""
	}
	return "//" + d.Host
}

// Hooks is what a host environment calls into: a base URL filter and a
// per-request guard. Router implements it.
type Hooks interface {
	// RewriteBaseURL moves rawURL to the domain of the language served on
	// requestHost, or returns it unchanged when requestHost has no language.
	RewriteBaseURL(rawURL, requestHost string) string
	// OnRequest decides whether a request on requestHost may proceed.
	OnRequest(requestHost string) Decision
}

var _ Hooks = (*Router)(nil)

// RewriteBaseURL implements Hooks.
func (r *Router) RewriteBaseURL(rawURL, requestHost string) string {
	lang := r.LanguageFromHost(requestHost)
	if lang == "" {
		return rawURL
	}
	return r.AddLanguageToLink(rawURL, lang)
}

// OnRequest implements Hooks. A known host proceeds with its language; an
// unknown host is sent to the default language's host with 301 Moved Permanently.
// Without a usable default host the request proceeds with no language rather
// than being redirected to "//".
func (r *Router) OnRequest(requestHost string) Decision {
	if r.HasKnownHost(requestHost) {
		return Decision{Action: Proceed, Language: r.LanguageFromHost(requestHost)}
	}

	target := r.DefaultHost()
	if target == "" {
		return Decision{Action: Proceed}
	}

	return Decision{
		Action: RedirectTo,
		Host:   target,
		Status: http.StatusMovedPermanently,
	}
}
