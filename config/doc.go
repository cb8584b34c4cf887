// Package config loads typed configuration through a small fetch, parse, default and validate pipeline.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into config struct, with path navigation support
//   - DataFetcher: retrieves raw config data (config/fetcher/file, config/fetcher/env)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// The Provider function accepts a path parameter that selects a section of the
// document. Paths use colon (:) as the separator:
//
//	"obsidian"                  -> config["obsidian"]
//	"server:transport"          -> config["server"]["transport"]
//	""                          -> entire document
//
// # Layering
//
// Fetchers compose. The env fetcher takes a base fetcher (typically a file) and
// overlays environment variables on top of it, so the parser sees one document:
//
//	base, _ := filefetcher.NewFetcher(path)()
//	fetcher := envfetcher.NewFetcher(base, envfetcher.Bind("obsidian:api_key", "OBSIDIAN_API_KEY"))
//	cfg, err := config.Provider(&obsidian.Config{}, "obsidian")(yamlparser.NewParser(), fetcher)
package config
