package domainrouter

import (
	"regexp"
	"strings"
)

// AddLanguageToLink points rawURL at the domain of lang by replacing the
// canonical home host with the host registered for lang. Scheme marker, path,
// query and fragment are kept as they are.
//
// rawURL is returned unchanged when lang is empty, has no registered host,
// or the URL does not live on the canonical home host.
func (r *Router) AddLanguageToLink(rawURL, lang string) string {
	if lang == "" {
		return rawURL
	}
	host := r.hosts[lang]
	if host == "" || r.homeHost == "" {
		return rawURL
	}

	if r.mode == RewriteLegacy {
		return r.addPattern.ReplaceAllString(rawURL, "://"+host+"${2}")
	}

	return replaceAuthority(rawURL, host, func(authority string) bool {
		return authority == r.homeHost
	})
}

// RemoveLanguageFromLink is the inverse of AddLanguageToLink: a URL on any
// registered host is moved back to the canonical home host.
func (r *Router) RemoveLanguageFromLink(rawURL string) string {
	if len(r.hosts) == 0 || r.homeHost == "" {
		return rawURL
	}

	if r.mode == RewriteLegacy {
		if r.removePattern == nil {
			return rawURL
		}
		return r.removePattern.ReplaceAllString(rawURL, "://"+r.homeHost+"${2}")
	}

	return replaceAuthority(rawURL, r.homeHost, func(authority string) bool {
		if authority == "" {
			return false
		}
		for _, lang := range r.languages {
			if r.hosts[lang] == authority {
				return true
			}
		}
		return false
	})
}

// replaceAuthority swaps the authority of rawURL for host when match accepts it.
// The original bytes around the authority are preserved, so malformed escapes
// in the path or query do not prevent a rewrite. Only the URL's own authority
// is considered, never hosts embedded in its query or fragment.
func replaceAuthority(rawURL, host string, match func(authority string) bool) string {
	prefix, authority, rest, ok := splitAuthority(rawURL)
	if !ok || authority == "" || !match(strings.ToLower(authority)) {
		return rawURL
	}
	return prefix + host + rest
}

// splitAuthority splits rawURL into everything up to and including the "//"
// authority marker, the authority itself and the remainder starting at the
// first '/', '?' or '#'.
func splitAuthority(rawURL string) (prefix, authority, rest string, ok bool) {
	var start int
	switch i := strings.Index(rawURL, "://"); {
	case i > 0 && isScheme(rawURL[:i]):
		start = i + len("://")
	case strings.HasPrefix(rawURL, "//"):
		start = len("//")
	default:
		return "", "", "", false
	}

	end := len(rawURL)
	if j := strings.IndexAny(rawURL[start:], "/?#"); j >= 0 {
		end = start + j
	}
	return rawURL[:start], rawURL[start:end], rawURL[end:], true
}

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}

// compileLegacyPatterns prepares the loose "://HOST($|/.*)" patterns.
// They match the leftmost occurrence anywhere in the string, including
// inside query strings. Hosts are quoted, so a dot only matches a dot.
func (r *Router) compileLegacyPatterns() {
	if r.homeHost != "" {
		r.addPattern = regexp.MustCompile(`://(` + regexp.QuoteMeta(r.homeHost) + `)($|/.*)`)
	}

	alternatives := make([]string, 0, len(r.languages))
	for _, lang := range r.languages {
		if host := r.hosts[lang]; host != "" {
			alternatives = append(alternatives, regexp.QuoteMeta(host))
		}
	}
	if len(alternatives) > 0 {
		r.removePattern = regexp.MustCompile(`://(` + strings.Join(alternatives, "|") + `)($|/.*)`)
	}
}
