package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Option defines a function type for configuring a Parser.
type Option func(*Parser)

// WithStrict makes the parser reject keys that do not map to a field of the target.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// Parser implements config.Parser for YAML data.
// It uses goccy/go-yaml PathString for path navigation.
type Parser struct {
	strict bool
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	decodeOpts := p.decodeOptions()

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, decodeOpts...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, decodeOpts...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

func (p *Parser) decodeOptions() []yaml.DecodeOption {
	if p.strict {
		return []yaml.DecodeOption{yaml.DisallowUnknownField()}
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "obsidian" -> "$.obsidian"
//   - "server:transport" -> "$.server.transport"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}
