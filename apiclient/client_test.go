package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid https config", func(t *testing.T) {
		client, err := New(Config{Scheme: "https", Host: "api.example.com"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("valid http config", func(t *testing.T) {
		_, err := New(Config{Scheme: "http", Host: "api.example.com"})
		assert.NoError(t, err)
	})

	t.Run("invalid scheme rejected", func(t *testing.T) {
		_, err := New(Config{Scheme: "ftp", Host: "api.example.com"})
		assert.ErrorIs(t, err, ErrInvalidScheme)
	})

	t.Run("empty scheme rejected", func(t *testing.T) {
		_, err := New(Config{Host: "api.example.com"})
		assert.ErrorIs(t, err, ErrInvalidScheme)
	})

	t.Run("empty host rejected", func(t *testing.T) {
		_, err := New(Config{Scheme: "https"})
		assert.ErrorIs(t, err, ErrNoHost)
	})
}

func TestClientHeaders(t *testing.T) {
	var got http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	newClient := func(t *testing.T, cfg Config) *Client {
		t.Helper()

		cfg.Scheme = "http"
		cfg.Host = server.Listener.Addr().String()

		client, err := New(cfg)
		require.NoError(t, err)

		return client
	}

	t.Run("default accept header", func(t *testing.T) {
		client := newClient(t, Config{})

		_, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)

		assert.Equal(t, "application/vnd.netgrid.api-v1+json", got.Get("Accept"))
	})

	t.Run("configured api version", func(t *testing.T) {
		client := newClient(t, Config{APIVersion: "2"})

		_, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)

		assert.Equal(t, "application/vnd.netgrid.api-v2+json", got.Get("Accept"))
	})

	t.Run("accept override", func(t *testing.T) {
		client := newClient(t, Config{})

		_, err := client.Get(context.Background(), "/", &CallOptions{Accept: "application/json"})
		require.NoError(t, err)

		assert.Equal(t, "application/json", got.Get("Accept"))
	})

	t.Run("derived bearer token", func(t *testing.T) {
		client := newClient(t, Config{AppID: "app", AppSecret: "sec"})

		_, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)

		assert.Equal(t, "Bearer app_sec", got.Get("Authorization"))
	})

	t.Run("per call token wins", func(t *testing.T) {
		client := newClient(t, Config{AppID: "app", AppSecret: "sec"})

		_, err := client.Get(context.Background(), "/", &CallOptions{AccessToken: "user-token"})
		require.NoError(t, err)

		assert.Equal(t, "Bearer user-token", got.Get("Authorization"))
	})

	t.Run("no credentials means no authorization header", func(t *testing.T) {
		client := newClient(t, Config{AppID: "app"})

		_, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)

		assert.Empty(t, got.Get("Authorization"))
	})

	t.Run("request id attached", func(t *testing.T) {
		client := newClient(t, Config{})

		_, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)

		assert.NotEmpty(t, got.Get("X-Request-ID"))
	})

	t.Run("request id override", func(t *testing.T) {
		client := newClient(t, Config{RequestIDFunc: func() string { return "fixed-id" }})

		_, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)

		assert.Equal(t, "fixed-id", got.Get("X-Request-ID"))
	})
}
