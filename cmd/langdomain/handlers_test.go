package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langdomain/pkg/domainrouter"
	"github.com/dmitrymomot/langdomain/pkg/environment"
	"github.com/dmitrymomot/langdomain/pkg/httpserver"
	"github.com/dmitrymomot/langdomain/pkg/logger"
	"github.com/dmitrymomot/langdomain/pkg/requestid"
)

func testHolder() *domainrouter.Holder {
	return domainrouter.NewHolder(domainrouter.New(domainrouter.Config{
		HomeURL:         "http://example.com",
		DefaultLanguage: "en",
		Domains: []domainrouter.Domain{
			{Language: "en", URL: "http://example.com"},
			{Language: "fr", URL: "http://example.fr"},
		},
	}))
}

func testHandler(holder *domainrouter.Holder, checks map[string]httpserver.Check) http.Handler {
	return newHandler(handlerDeps{
		env:     environment.Development,
		routers: holder,
		checks:  checks,
	})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandler_UnknownHostRedirects(t *testing.T) {
	t.Parallel()

	rec := get(t, testHandler(testHolder(), nil), "http://unknown.org/some/page")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "//example.com", rec.Header().Get("Location"))
}

func TestHandler_ProbesSkipHostGuard(t *testing.T) {
	t.Parallel()

	h := testHandler(testHolder(), map[string]httpserver.Check{
		"store": func(context.Context) error { return nil },
	})

	rec := get(t, h, "http://10.0.0.5:8080/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "http://10.0.0.5:8080/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Home(t *testing.T) {
	t.Parallel()

	rec := get(t, testHandler(testHolder(), nil), "http://EXAMPLE.fr:8080/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	body := decodeJSON[homeResponse](t, rec)
	assert.Equal(t, homeResponse{Language: "fr", HomeURL: "http://example.fr/", DefaultLanguage: "en"}, body)
}

func TestHandler_Hosts(t *testing.T) {
	t.Parallel()

	rec := get(t, testHandler(testHolder(), nil), "http://example.com/hosts")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON[hostsResponse](t, rec)
	assert.Equal(t, "example.com", body.HomeHost)
	assert.Equal(t, []string{"en", "fr"}, body.Languages)
	assert.Equal(t, map[string]string{"en": "example.com", "fr": "example.fr"}, body.Hosts)
}

func TestHandler_Links(t *testing.T) {
	t.Parallel()

	h := testHandler(testHolder(), nil)
	link := url.QueryEscape("http://example.com/path?q=1")

	tests := []struct {
		name   string
		target string
		want   linkResponse
	}{
		{
			name:   "add explicit language",
			target: "http://example.com/links/add?lang=fr&url=" + link,
			want:   linkResponse{URL: "http://example.fr/path?q=1", Language: "fr"},
		},
		{
			name:   "add uses request language",
			target: "http://example.fr/links/add?url=" + link,
			want:   linkResponse{URL: "http://example.fr/path?q=1", Language: "fr"},
		},
		{
			name:   "add unknown language is a no-op",
			target: "http://example.com/links/add?lang=de&url=" + link,
			want:   linkResponse{URL: "http://example.com/path?q=1", Language: "de"},
		},
		{
			name:   "remove",
			target: "http://example.com/links/remove?url=" + url.QueryEscape("http://example.fr/path?q=1"),
			want:   linkResponse{URL: "http://example.com/path?q=1", Language: "fr"},
		},
		{
			name:   "base url follows request host",
			target: "http://example.fr/links/base?url=" + link,
			want:   linkResponse{URL: "http://example.fr/path?q=1", Language: "fr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, h, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decodeJSON[linkResponse](t, rec))
		})
	}
}

func TestHandler_LinksRequireURL(t *testing.T) {
	t.Parallel()

	rec := get(t, testHandler(testHolder(), nil), "http://example.com/links/add?lang=fr")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing url parameter", decodeJSON[errorResponse](t, rec).Error)
}

func TestHandler_FollowsHolderSwap(t *testing.T) {
	t.Parallel()

	holder := testHolder()
	h := testHandler(holder, nil)

	rec := get(t, h, "http://example.de/")
	require.Equal(t, http.StatusMovedPermanently, rec.Code)

	holder.Set(domainrouter.New(domainrouter.Config{
		HomeURL:         "http://example.com",
		DefaultLanguage: "de",
		Domains:         []domainrouter.Domain{{Language: "de", URL: "http://example.de"}},
	}))

	rec = get(t, h, "http://example.de/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "de", decodeJSON[homeResponse](t, rec).Language)

	rec = get(t, h, "http://example.fr/")
	assert.Equal(t, "//example.de", rec.Header().Get("Location"))
}

func TestSettingsCheck(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, settingsCheck(domainrouter.NewHolder(nil))(context.Background()), errSettingsNotLoaded)
	assert.NoError(t, settingsCheck(testHolder())(context.Background()))
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	_, err := openStore(context.Background(), appConfig{SettingsBackend: "etcd"}, nil)
	require.ErrorIs(t, err, errUnknownBackend)

	b, err := openStore(context.Background(), appConfig{SettingsBackend: "file", SettingsFile: "missing.yaml"}, logger.Noop())
	require.NoError(t, err)
	assert.NotNil(t, b.store)
	assert.Empty(t, b.checks)
}
