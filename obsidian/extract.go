package obsidian

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"regexp"
)

// ErrMissingPathOrContent is returned when a JSON note lacks a usable path or content.
var ErrMissingPathOrContent = errors.New("active file path or content is missing in response")

// ErrMissingPathHeader is returned when neither Content-Location nor Content-Disposition names the file.
var ErrMissingPathHeader = errors.New("active file path is missing in response headers")

// ErrMissingContent is returned when a headers-flavor response has an empty body.
var ErrMissingContent = errors.New("active file content is missing in response body")

// filenameParam matches a quoted or bare filename parameter. filename*= is not matched.
var filenameParam = regexp.MustCompile(`(?i)(?:^|;)\s*filename\s*=\s*(?:"([^"]*)"|([^;\s]+))`)

// noteDocument is the subset of application/vnd.olrapi.note+json the client reads.
// Fields stay raw so a non-string value counts as absent instead of failing the decode.
type noteDocument struct {
	Path    json.RawMessage `json:"path"`
	Content json.RawMessage `json:"content"`
	Body    json.RawMessage `json:"body"`
}

func extractFromJSON(resp response) (string, string, error) {
	var doc noteDocument

	// An undecodable body is treated the same as a document without the fields.
	_ = json.Unmarshal(resp.body, &doc)

	path, _ := rawString(doc.Path)

	content, ok := rawString(doc.Content)
	if !ok {
		content, _ = rawString(doc.Body)
	}

	if path == "" || content == "" {
		return "", "", ErrMissingPathOrContent
	}

	return path, content, nil
}

func extractFromHeaders(resp response) (string, string, error) {
	path := pathFromHeaders(resp.header)
	if path == "" {
		return "", "", ErrMissingPathHeader
	}

	if len(resp.body) == 0 {
		return "", "", ErrMissingContent
	}

	return path, string(resp.body), nil
}

func pathFromHeaders(header http.Header) string {
	if location := header.Get("Content-Location"); location != "" {
		return unescape(location)
	}

	match := filenameParam.FindStringSubmatch(header.Get("Content-Disposition"))
	if match == nil {
		return ""
	}

	name := match[1]
	if name == "" {
		name = match[2]
	}

	return unescape(name)
}

// unescape percent-decodes value, keeping it verbatim when it is not valid escaping.
func unescape(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}

// rawString decodes raw only when it is a JSON string; null counts as absent.
func rawString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}

	var value string

	err := json.Unmarshal(raw, &value)
	if err != nil {
		return "", false
	}

	return value, true
}
