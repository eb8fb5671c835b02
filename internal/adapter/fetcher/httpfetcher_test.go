package fetcher

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher() *HTTPFetcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHTTPFetcher(logger, 5*time.Second, "pointerrss-test")
}

func TestHTTPFetcher_Fetch_Succsess(t *testing.T) {
	var gotUA string
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<p>test response data</p>"))
	}))
	defer testServer.Close()
	fetcher := newTestFetcher()

	ctx := context.Background()
	reader, err := fetcher.Fetch(ctx, testServer.URL)

	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "<p>test response data</p>", string(data))
	assert.Equal(t, "pointerrss-test", gotUA)
}

func TestHTTPFetcher_Fetch_DecodesCharset(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		w.WriteHeader(http.StatusOK)
		// "Café" в Latin-1.
		w.Write([]byte{'<', 'h', '2', '>', 'C', 'a', 'f', 0xe9, '<', '/', 'h', '2', '>'})
	}))
	defer testServer.Close()
	fetcher := newTestFetcher()

	reader, err := fetcher.Fetch(context.Background(), testServer.URL)

	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "<h2>Café</h2>", string(data))
}

func TestHTTPFetcher_Fetch_NotFound(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer testServer.Close()

	fetcher := newTestFetcher()

	ctx := context.Background()
	reader, err := fetcher.Fetch(ctx, testServer.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
	assert.Nil(t, reader)
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	fetcher := newTestFetcher()

	ctx := context.Background()
	reader, err := fetcher.Fetch(ctx, "invalid://url")

	assert.Error(t, err)
	assert.Nil(t, reader)
}

func TestHTTPFecher_ContextCancelled(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("slow response"))
	}))
	defer testServer.Close()
	fetcher := newTestFetcher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader, err := fetcher.Fetch(ctx, testServer.URL)

	assert.Error(t, err)
	assert.Nil(t, reader)
}
