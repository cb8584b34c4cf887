package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for an optional configuration file.
// The file is read once at construction time and the contents are cached.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns an Fx-friendly constructor for a file-backed Fetcher.
// An empty path yields a Fetcher with an empty document, so the config file is optional
// and other layers (see config/fetcher/env) or defaults fill the values.
// A non-empty path must name a readable regular file.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fpath == "" {
			return &Fetcher{}, nil
		}

		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from, or "" when no file was configured.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
