package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNilParser is returned when Provider is given a nil Parser.
var ErrNilParser = errors.New("config parser must not be nil")

// ErrNilFetcher is returned when Provider is given a nil DataFetcher.
var ErrNilFetcher = errors.New("config fetcher must not be nil")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "obsidian" navigates to config["obsidian"]
//   - "server:transport:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an implementation using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// FetcherFunc adapts a function to the DataFetcher interface.
type FetcherFunc func() ([]byte, error)

// Fetch calls f().
func (f FetcherFunc) Fetch() ([]byte, error) {
	return f()
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
// The returned function has the shape of an Fx constructor, so it can be passed to fx.Provide.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		if parser == nil {
			return nil, ErrNilParser
		}

		if dataSourcer == nil {
			return nil, ErrNilFetcher
		}

		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Debug("config defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating %q error: %w", path, err)
			}
		}

		return target, nil
	}
}
