package domainrouter

// RewriteMode selects how AddLanguageToLink and RemoveLanguageFromLink find the host to replace.
type RewriteMode int

const (
	// RewriteStructured replaces the URL's own authority only.
	RewriteStructured RewriteMode = iota
	// RewriteLegacy replaces the leftmost "://HOST" followed by "/" or the end
	// of the string wherever it occurs, query strings included.
	RewriteLegacy
)

func (m RewriteMode) String() string {
	switch m {
	case RewriteStructured:
		return "structured"
	case RewriteLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseRewriteMode maps "structured" and "legacy" to their modes.
// Anything else yields RewriteStructured and false.
func ParseRewriteMode(s string) (RewriteMode, bool) {
	switch s {
	case "structured", "":
		return RewriteStructured, true
	case "legacy":
		return RewriteLegacy, true
	default:
		return RewriteStructured, false
	}
}

// Option configures a Router.
type Option func(*Router)

// WithRewriteMode sets the link rewriting mode. Defaults to RewriteStructured.
func WithRewriteMode(m RewriteMode) Option {
	return func(r *Router) {
		r.mode = m
	}
}
