package domainsettings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langdomain/pkg/domainsettings"
)

func TestEnvStore_Load(t *testing.T) {
	t.Setenv("LANG_HOME_URL", "http://example.com")
	t.Setenv("LANG_DEFAULT", "en")
	t.Setenv("LANG_DOMAINS", "en=http://example.com, fr=http://example.fr,de=https://example.de/")

	snap, err := domainsettings.NewEnvStore().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, validSnapshot(), snap)
}

func TestEnvStore_ReadsEveryLoad(t *testing.T) {
	t.Setenv("LANG_HOME_URL", "http://example.com")
	t.Setenv("LANG_DEFAULT", "en")
	t.Setenv("LANG_DOMAINS", "en=http://example.com")

	store := domainsettings.NewEnvStore()
	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Domains, 1)

	t.Setenv("LANG_DOMAINS", "en=http://example.com,fr=http://example.fr")
	snap, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Domains, 2)
}

func TestEnvStore_MissingVariable(t *testing.T) {
	t.Setenv("LANG_HOME_URL", "http://example.com")
	t.Setenv("LANG_DEFAULT", "en")
	t.Setenv("LANG_DOMAINS", "")

	_, err := domainsettings.NewEnvStore().Load(context.Background())
	require.ErrorIs(t, err, domainsettings.ErrFailedToParseEnv)
}

func TestParseDomainList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    domainsettings.Domains
		wantErr bool
	}{
		{name: "empty", in: "", want: nil},
		{
			name: "keeps order and trims",
			in:   " fr = http://example.fr ,en=http://example.com,",
			want: domainsettings.Domains{
				{Language: "fr", URL: "http://example.fr"},
				{Language: "en", URL: "http://example.com"},
			},
		},
		{
			name: "url may contain equals sign",
			in:   "en=http://example.com/?a=b",
			want: domainsettings.Domains{{Language: "en", URL: "http://example.com/?a=b"}},
		},
		{name: "missing separator", in: "en", wantErr: true},
		{name: "missing language", in: "=http://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := domainsettings.ParseDomainList(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domainsettings.ErrMalformedDomainMap)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
