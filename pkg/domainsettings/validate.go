package domainsettings

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/langdomain/pkg/domainrouter"
)

// Validate checks the conditions without which a router is useless: a home
// URL with a host, at least one domain, non-empty and unique language
// identifiers, and a default language that has an entry. All problems are
// reported at once, joined with ErrInvalidSettings.
//
// Entries the router can live with are reported by Warnings instead.
func Validate(s Snapshot) error {
	var errs []error

	switch {
	case strings.TrimSpace(s.HomeURL) == "":
		errs = append(errs, ErrEmptyHomeURL)
	case domainrouter.Host(s.HomeURL) == "":
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidHomeURL, s.HomeURL))
	}

	if len(s.Domains) == 0 {
		errs = append(errs, ErrNoDomains)
	}

	seen := make(map[string]struct{}, len(s.Domains))
	for i, d := range s.Domains {
		if d.Language == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d", ErrEmptyLanguage, i))
			continue
		}
		if _, dup := seen[d.Language]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateLanguage, d.Language))
		}
		seen[d.Language] = struct{}{}
	}

	if _, ok := seen[s.DefaultLanguage]; !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrDefaultLanguageMissing, s.DefaultLanguage))
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidSettings}, errs...)...)
}

// Warnings lists entries that are accepted but probably mistakes:
// a domain URL without a host, which the router registers with an empty
// host that never matches, and language identifiers that are not BCP 47 tags.
// Identifiers are opaque to the router, so "english-uk" works; it is only flagged.
func Warnings(s Snapshot) []error {
	var warns []error
	for _, d := range s.Domains {
		if d.Language == "" {
			continue
		}
		if _, err := language.Parse(d.Language); err != nil {
			warns = append(warns, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, d.Language, err))
		}
		if domainrouter.Host(d.URL) == "" {
			warns = append(warns, fmt.Errorf("%w: %s: %q", ErrInvalidDomain, d.Language, d.URL))
		}
	}
	return warns
}
