package obsidian

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ExtractionErrorSurvivesDeadline(t *testing.T) {
	t.Parallel()

	doer := DoerFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{ //nolint:exhaustruct // test response
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("# note")),
			Request:    req,
		}, nil
	})

	client, err := NewClient(Config{Flavor: FlavorHeaders, Timeout: 20 * time.Millisecond}, WithDoer(doer))
	require.NoError(t, err)

	extract := client.extract
	client.extract = func(resp response) (string, string, error) {
		time.Sleep(60 * time.Millisecond)

		return extract(resp)
	}

	_, err = client.ActiveFile(context.Background())
	require.ErrorIs(t, err, ErrMissingPathHeader)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestRawString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "string", raw: `"a.md"`, want: "a.md", wantOK: true},
		{name: "empty string", raw: `""`, want: "", wantOK: true},
		{name: "padded string", raw: " \"x\" ", want: "x", wantOK: true},
		{name: "null", raw: `null`, wantOK: false},
		{name: "padded null", raw: " null\n", wantOK: false},
		{name: "number", raw: `42`, wantOK: false},
		{name: "object", raw: `{"a":1}`, wantOK: false},
		{name: "absent", raw: ``, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := rawString([]byte(tc.raw))
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
