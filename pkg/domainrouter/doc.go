// Package domainrouter maps languages to domains for sites that serve one
// language per domain (example.com, example.fr, ...).
//
// A Router is built once from a Config snapshot: the canonical home URL, the
// default language and the ordered list of language domains. From each domain
// URL it derives a bare host; a domain that cannot be parsed yields an empty
// host and is otherwise ignored, so construction never fails.
//
// # Operations
//
//   - Hosts and Languages expose the derived registry.
//   - LanguageFromURL and LanguageFromHost resolve a language by host and
//     return "" on a miss.
//   - AddLanguageToLink moves a URL from the home host to a language host,
//     RemoveLanguageFromLink moves it back.
//   - HomeURL returns the home page of a language with exactly one trailing slash.
//   - HasKnownHost and DefaultHost drive the unknown-host redirect.
//
// None of them perform I/O, block or return errors. The inbound host is always
// passed in by the caller; the router never reads request state itself.
//
// # Link rewriting
//
// By default only the URL's own authority is compared and replaced
// (RewriteStructured). RewriteLegacy reproduces the historic pattern based
// behaviour that rewrites the leftmost "://HOST" followed by "/" or the end of
// the string, wherever it appears:
//
//	r := domainrouter.New(cfg, domainrouter.WithRewriteMode(domainrouter.RewriteLegacy))
//	r.AddLanguageToLink("http://other.com/?u=http://example.com/x", "fr")
//	// "http://other.com/?u=http://example.fr/x"
//
// # HTTP integration
//
// Router implements Hooks, the two entry points a host environment needs:
// RewriteBaseURL for its base URL filter and OnRequest for the per-request
// guard. Middleware adapts OnRequest to net/http:
//
//	holder := domainrouter.NewHolder(domainrouter.New(cfg))
//	mux.Handle("/", domainrouter.Middleware(holder,
//		domainrouter.WithSkipPaths("/healthz"),
//	)(app))
//
// Holder swaps routers atomically, so settings can be reloaded while requests
// are being served.
package domainrouter
