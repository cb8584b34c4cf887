// Package env provides a DataFetcher that layers environment variables over another DataFetcher.
//
// Each Binding names a colon-separated path in the document and one or more
// variable names; the first non-empty variable wins:
//
//	fetcher := env.NewFetcher(fileFetcher, []env.Binding{
//	    env.Bind("obsidian:base_url", "OBSIDIAN_BASE_URL"),
//	    env.Bind("obsidian:api_key", "OBSIDIAN_API_KEY", "OBSIDIAN_API_TOKEN"),
//	})
//
// Values are inserted as strings. Duration fields accept Go duration syntax ("5s").
package env
