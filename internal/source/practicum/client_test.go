package practicum

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(endpoint string) *Client {
	return New(Config{
		Endpoint: endpoint,
		Token:    "test-token",
		Timeout:  time.Second,
	}, testLogger())
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "1000", r.URL.Query().Get("from_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"X","status":"approved"}],"current_date":2000}`))
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).Fetch(context.Background(), 1000)

	require.NoError(t, err)
	assert.Contains(t, payload, "homeworks")
	assert.Contains(t, payload, "current_date")
}

func TestClient_Fetch_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Fetch(context.Background(), 0)

	require.Error(t, err)
	assert.Equal(t, KindUnexpectedStatus, KindOf(err))
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Fetch_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks": [`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Fetch(context.Background(), 0)

	require.Error(t, err)
	assert.Equal(t, KindMalformedPayload, KindOf(err))
}

func TestClient_Fetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).Fetch(context.Background(), 0)

	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestClient_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(Config{
		Endpoint: server.URL,
		Token:    "test-token",
		Timeout:  20 * time.Millisecond,
	}, testLogger())

	_, err := client.Fetch(context.Background(), 0)

	require.Error(t, err)
	assert.Equal(t, KindTransport, KindOf(err))
}
