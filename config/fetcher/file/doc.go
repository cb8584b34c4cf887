// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached; Fetch never touches the
// filesystem again. An empty path is allowed and produces an empty document,
// which lets the CLI run without a config file and rely on environment
// variables and defaults.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/activenote/config.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect a directory path.
package file
