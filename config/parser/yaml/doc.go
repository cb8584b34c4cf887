// Package yaml provides a YAML parser implementation for the config package.
//
// Parsing uses github.com/goccy/go-yaml. Colon-separated paths such as
// "obsidian" or "server:transport" are converted to YAML path syntax
// ("$.obsidian", "$.server.transport") and resolved with PathString before
// the selected node is decoded. WithStrict(true) rejects unknown keys, which
// catches typos like "vault_pth" at startup.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict(true))
//	var cfg obsidian.Config
//	err := parser.Parse(data, &cfg, "obsidian")
package yaml
