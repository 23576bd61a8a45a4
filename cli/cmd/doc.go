// Package cmd implements the teamport subcommands: import, fetch, view, and
// init.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file. It is also the top-level key of that file.
	ConfigIdentifier = "config"

	// CatalogIdentifier is the kong variable identifier containing the path to
	// the user catalog, searched after every other catalog file.
	CatalogIdentifier = "userCatalog"
)
