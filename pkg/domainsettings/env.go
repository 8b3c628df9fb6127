package domainsettings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/langdomain/pkg/config"
)

// envSettings is the environment representation of a Snapshot.
// LANG_DOMAINS keeps its order: "en=https://example.com,fr=https://example.fr".
type envSettings struct {
	HomeURL         string `env:"LANG_HOME_URL,required,notEmpty"`
	DefaultLanguage string `env:"LANG_DEFAULT,required,notEmpty"`
	Domains         string `env:"LANG_DOMAINS,required,notEmpty"`
}

// EnvStore reads settings from LANG_HOME_URL, LANG_DEFAULT and LANG_DOMAINS.
// The environment is parsed on every Load rather than cached.
type EnvStore struct{}

// NewEnvStore returns an EnvStore.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Load implements Store.
func (s *EnvStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	raw, err := config.Parse[envSettings]()
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToParseEnv, err)
	}

	domains, err := ParseDomainList(raw.Domains)
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToParseEnv, err)
	}

	return Snapshot{
		HomeURL:         raw.HomeURL,
		DefaultLanguage: raw.DefaultLanguage,
		Domains:         domains,
	}, nil
}

// ParseDomainList parses "lang=url" pairs separated by commas, keeping their order.
func ParseDomainList(s string) (Domains, error) {
	var out Domains
	for pair := range strings.SplitSeq(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		lang, url, ok := strings.Cut(pair, "=")
		lang, url = strings.TrimSpace(lang), strings.TrimSpace(url)
		if !ok || lang == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedDomainMap, pair)
		}
		out = append(out, Domain{Language: lang, URL: url})
	}
	return out, nil
}
