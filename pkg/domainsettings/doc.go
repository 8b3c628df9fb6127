// Package domainsettings loads the language domain configuration that
// domainrouter.Router instances are built from.
//
// Settings are a Snapshot: the canonical home URL, the default language and an
// ordered list of language domains. They can live in a YAML file, environment
// variables, Redis, PostgreSQL or MongoDB; every backend implements Store.
//
//	store := domainsettings.NewFileStore("domains.yaml")
//	holder := domainrouter.NewHolder(nil)
//	reloader := domainsettings.NewReloader(store, holder, cfg,
//		domainsettings.WithReloaderLogger(log),
//	)
//	go reloader.Start(ctx)
//
// Validate rejects snapshots that would produce a useless router: no home host,
// no domains, empty or duplicate languages, or a default language without an
// entry. A domain URL without a host or a language that is not a BCP 47 tag is
// only reported by Warnings: the router registers such an entry with an empty
// host and keeps serving the others. The Reloader logs warnings and never swaps
// in a router built from invalid settings.
package domainsettings
