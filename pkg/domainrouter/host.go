package domainrouter

import (
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// ParseHost extracts the bare host from an absolute ("https://example.fr/x")
// or protocol-relative ("//example.fr") URL. Port, IPv6 brackets and a
// trailing dot are dropped, the result is lowercased and internationalized
// names are converted to their ASCII form.
//
// ok is false when raw carries no host at all, e.g. "example.fr" without a
// scheme or an unparsable string.
func ParseHost(raw string) (host string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}

	return normalizeHost(u.Hostname())
}

// Host is ParseHost with the "empty string on failure" contract used across
// the package: a malformed domain degrades to an empty host instead of an error.
func Host(raw string) string {
	host, _ := ParseHost(raw)
	return host
}

// NormalizeRequestHost turns an inbound Host header value ("Example.FR:8080")
// into the form stored in the host registry ("example.fr").
func NormalizeRequestHost(hostport string) string {
	hostport = strings.TrimSpace(hostport)
	if hostport == "" {
		return ""
	}

	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}

	normalized, _ := normalizeHost(host)
	return normalized
}

func normalizeHost(host string) (string, bool) {
	host = strings.TrimSuffix(strings.TrimSpace(host), ".")
	if len(host) > 2 && host[0] == '[' && host[len(host)-1] == ']' {
		host = host[1 : len(host)-1]
	}
	if host == "" {
		return "", false
	}

	if isASCII(host) {
		return strings.ToLower(host), true
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", false
	}
	return strings.ToLower(ascii), true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
