package env

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/0xalexb/activenote/config"

	"github.com/goccy/go-yaml"
)

// ErrInvalidBinding is returned when a binding has no path or no variable names.
var ErrInvalidBinding = errors.New("binding needs a path and at least one variable name")

// ErrNotMapping is returned when a binding path crosses a value that is not a mapping.
var ErrNotMapping = errors.New("not a mapping")

// LookupFunc resolves an environment variable. os.LookupEnv is the default.
type LookupFunc func(name string) (string, bool)

// Binding maps a colon-separated document path to environment variable names.
// The first variable with a non-empty value wins.
type Binding struct {
	Path  string
	Names []string
}

// Bind creates a Binding.
func Bind(path string, names ...string) Binding {
	return Binding{Path: path, Names: names}
}

// Option defines a function type for configuring a Fetcher.
type Option func(*Fetcher)

// WithLookup replaces os.LookupEnv.
func WithLookup(lookup LookupFunc) Option {
	return func(f *Fetcher) {
		f.lookup = lookup
	}
}

// Fetcher implements config.DataFetcher by overlaying environment variables on a base YAML document.
type Fetcher struct {
	base     config.DataFetcher
	bindings []Binding
	lookup   LookupFunc
}

// NewFetcher creates a Fetcher. A nil base starts from an empty document.
func NewFetcher(base config.DataFetcher, bindings []Binding, opts ...Option) *Fetcher {
	fetcher := &Fetcher{
		base:     base,
		bindings: bindings,
		lookup:   os.LookupEnv,
	}

	for _, apply := range opts {
		apply(fetcher)
	}

	return fetcher
}

// Fetch reads the base document, applies the bindings and returns the merged document as YAML.
// The parent mapping of every binding is always present in the output, even when no variable
// is set, so parsers can navigate to it.
func (f *Fetcher) Fetch() ([]byte, error) {
	doc, err := f.baseDocument()
	if err != nil {
		return nil, err
	}

	for _, binding := range f.bindings {
		if binding.Path == "" || len(binding.Names) == 0 {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidBinding, binding)
		}

		keys := strings.Split(binding.Path, ":")

		section := doc

		for _, key := range keys[:len(keys)-1] {
			section, err = childMapping(section, key)
			if err != nil {
				return nil, fmt.Errorf("binding %q: %w", binding.Path, err)
			}
		}

		value, found := f.resolve(binding.Names)
		if !found {
			continue
		}

		section[keys[len(keys)-1]] = value
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding merged document: %w", err)
	}

	return data, nil
}

func (f *Fetcher) baseDocument() (map[string]any, error) {
	doc := map[string]any{}

	if f.base == nil {
		return doc, nil
	}

	data, err := f.base.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading base document: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("decoding base document: %w", err)
	}

	if doc == nil {
		doc = map[string]any{}
	}

	return doc, nil
}

func (f *Fetcher) resolve(names []string) (string, bool) {
	for _, name := range names {
		value, ok := f.lookup(name)
		if ok && value != "" {
			return value, true
		}
	}

	return "", false
}

// childMapping returns section[key] as a mapping, creating it when absent or null.
func childMapping(section map[string]any, key string) (map[string]any, error) {
	switch child := section[key].(type) {
	case nil:
		created := map[string]any{}
		section[key] = created

		return created, nil
	case map[string]any:
		return child, nil
	case map[any]any:
		converted := make(map[string]any, len(child))
		for k, v := range child {
			converted[fmt.Sprint(k)] = v
		}

		section[key] = converted

		return converted, nil
	default:
		return nil, fmt.Errorf("%q: %w", key, ErrNotMapping)
	}
}
