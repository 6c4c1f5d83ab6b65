package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/userkit/internal/core/domain"
)

// mockFetcher implements driving.Fetcher for testing.
type mockFetcher struct {
	data any
	ok   bool
}

func (m *mockFetcher) FetchData(_ context.Context, _ string) (any, bool) {
	return m.data, m.ok
}

func setupFetchTest(f *mockFetcher) func() {
	oldFetcher := fetcher
	fetcher = f
	return func() {
		fetcher = oldFetcher
		fetchPretty = false
	}
}

func TestFetchCmd_Use(t *testing.T) {
	assert.Equal(t, "fetch [url]", fetchCmd.Use)
}

func TestFetchCmd_PrintsText(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{data: domain.Text("hello"), ok: true})
	defer cleanup()

	out, err := runCmd(t, "fetch", "http://example.com")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestFetchCmd_JSONStringIsQuoted(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{data: "hi", ok: true})
	defer cleanup()

	out, err := runCmd(t, "fetch", "http://example.com")

	require.NoError(t, err)
	assert.Equal(t, "\"hi\"\n", out)
}

func TestFetchCmd_PrintsCompactJSON(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{data: map[string]any{"a": 1.0}, ok: true})
	defer cleanup()

	out, err := runCmd(t, "fetch", "http://example.com")

	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", out)
}

func TestFetchCmd_PrettyJSON(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{data: []any{1.0, 2.0}, ok: true})
	defer cleanup()

	out, err := runCmd(t, "fetch", "--pretty", "http://example.com")

	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2\n]\n", out)
}

func TestFetchCmd_FailureIsSwallowed(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{ok: false})
	defer cleanup()

	out, err := runCmd(t, "fetch", "http://unreachable.invalid")

	require.NoError(t, err)
	assert.Equal(t, "no data\n", out)
}

func TestFetchCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupFetchTest(nil)
	defer cleanup()
	fetcher = nil

	_, err := runCmd(t, "fetch", "http://example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch service not configured")
}

func TestWriteBody_NotTerminal(t *testing.T) {
	buf := new(bytes.Buffer)

	err := writeBody(buf, map[string]any{"k": "v"}, isTerminal(buf))

	require.NoError(t, err)
	assert.Equal(t, "{\"k\":\"v\"}\n", buf.String())
}

func TestWriteBody_Unmarshalable(t *testing.T) {
	buf := new(bytes.Buffer)

	err := writeBody(buf, make(chan int), false)

	assert.Error(t, err)
}
