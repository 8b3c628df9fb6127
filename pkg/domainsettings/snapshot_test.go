package domainsettings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langdomain/pkg/domainrouter"
	"github.com/dmitrymomot/langdomain/pkg/domainsettings"
)

func validSnapshot() domainsettings.Snapshot {
	return domainsettings.Snapshot{
		HomeURL:         "http://example.com",
		DefaultLanguage: "en",
		Domains: domainsettings.Domains{
			{Language: "en", URL: "http://example.com"},
			{Language: "fr", URL: "http://example.fr"},
			{Language: "de", URL: "https://example.de/"},
		},
	}
}

func TestSnapshot_URL(t *testing.T) {
	t.Parallel()

	s := validSnapshot()
	assert.Equal(t, "http://example.fr", s.URL("fr"))
	assert.Empty(t, s.URL("it"))
}

func TestSnapshot_RouterConfig(t *testing.T) {
	t.Parallel()

	cfg := validSnapshot().RouterConfig()
	assert.Equal(t, "http://example.com", cfg.HomeURL)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, []domainrouter.Domain{
		{Language: "en", URL: "http://example.com"},
		{Language: "fr", URL: "http://example.fr"},
		{Language: "de", URL: "https://example.de/"},
	}, cfg.Domains)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("valid snapshot", func(t *testing.T) {
		t.Parallel()
		r, err := domainsettings.Build(validSnapshot())
		require.NoError(t, err)
		assert.Equal(t, "fr", r.LanguageFromHost("example.fr"))
		assert.Equal(t, "//example.com", r.RedirectURL())
	})

	t.Run("router options are applied", func(t *testing.T) {
		t.Parallel()
		r, err := domainsettings.Build(validSnapshot(), domainrouter.WithRewriteMode(domainrouter.RewriteLegacy))
		require.NoError(t, err)
		assert.Equal(t, "http://example.fr/?next=http://example.com/x",
			r.AddLanguageToLink("http://example.com/?next=http://example.com/x", "fr"))
	})

	t.Run("malformed domain and opaque language are not fatal", func(t *testing.T) {
		t.Parallel()
		s := validSnapshot()
		s.Domains = append(s.Domains,
			domainsettings.Domain{Language: "es", URL: "not a url"},
			domainsettings.Domain{Language: "english-uk", URL: "http://example.co.uk"},
		)
		r, err := domainsettings.Build(s)
		require.NoError(t, err)
		assert.Equal(t, "", r.Hosts()["es"])
		assert.Equal(t, "english-uk", r.LanguageFromHost("example.co.uk"))
		assert.Equal(t, "fr", r.LanguageFromHost("example.fr"))
	})

	t.Run("invalid snapshot", func(t *testing.T) {
		t.Parallel()
		r, err := domainsettings.Build(domainsettings.Snapshot{})
		require.ErrorIs(t, err, domainsettings.ErrInvalidSettings)
		assert.Nil(t, r)
	})
}
