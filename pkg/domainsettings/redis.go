package domainsettings

import (
	"context"
	"errors"
	"slices"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces the keys used by RedisStore.
const DefaultRedisPrefix = "langdomain"

// RedisStore keeps settings in three keys:
//
//	<prefix>:home_url          string
//	<prefix>:default_language  string
//	<prefix>:domains           hash language -> url
//
// Hashes are unordered, so languages are returned sorted.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore returns a RedisStore. An empty prefix selects DefaultRedisPrefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context) (Snapshot, error) {
	var (
		home    *redis.StringCmd
		def     *redis.StringCmd
		domains *redis.MapStringStringCmd
	)
	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		home = p.Get(ctx, s.key("home_url"))
		def = p.Get(ctx, s.key("default_language"))
		domains = p.HGetAll(ctx, s.key("domains"))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return Snapshot{}, errors.Join(ErrFailedToLoad, err)
	}

	hosts := domains.Val()
	if errors.Is(home.Err(), redis.Nil) && len(hosts) == 0 {
		return Snapshot{}, ErrSettingsNotFound
	}

	langs := make([]string, 0, len(hosts))
	for lang := range hosts {
		langs = append(langs, lang)
	}
	slices.Sort(langs)

	snap := Snapshot{
		HomeURL:         home.Val(),
		DefaultLanguage: def.Val(),
		Domains:         make(Domains, 0, len(langs)),
	}
	for _, lang := range langs {
		snap.Domains = append(snap.Domains, Domain{Language: lang, URL: hosts[lang]})
	}
	return snap, nil
}

// Save replaces the stored settings atomically.
func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.key("home_url"), snap.HomeURL, 0)
		p.Set(ctx, s.key("default_language"), snap.DefaultLanguage, 0)
		p.Del(ctx, s.key("domains"))
		if len(snap.Domains) > 0 {
			values := make([]any, 0, len(snap.Domains)*2)
			for _, d := range snap.Domains {
				values = append(values, d.Language, d.URL)
			}
			p.HSet(ctx, s.key("domains"), values...)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}
