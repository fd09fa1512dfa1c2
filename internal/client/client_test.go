package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCapturingServer records the last request and replies with an empty
// success envelope.
func newCapturingServer(t *testing.T) (*client.Client, *tokenstore.MemoryStorage, *http.Request) {
	t.Helper()

	captured := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	t.Cleanup(srv.Close)

	storage := tokenstore.NewMemoryStorage()
	c, err := client.New(srv.URL, storage)
	require.NoError(t, err)
	return c, storage, captured
}

func TestClient_AttachesBearerToken(t *testing.T) {
	c, _, captured := newCapturingServer(t)
	ctx := context.Background()

	// No token held: no Authorization header at all.
	_, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Empty(t, captured.Header.Get("Authorization"))

	require.NoError(t, c.SetToken("my-token"))
	_, err = c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", captured.Header.Get("Authorization"))

	require.NoError(t, c.ClearToken())
	_, err = c.Me(ctx)
	require.NoError(t, err)
	assert.Empty(t, captured.Header.Get("Authorization"))
}

func TestClient_RequestShape(t *testing.T) {
	c, _, captured := newCapturingServer(t)

	_, err := c.Login(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/auth/login", captured.URL.Path)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
}

func TestClient_ServerErrorMessageIsVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid credentials"}}`))
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, tokenstore.NewMemoryStorage())
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.True(t, client.IsStatus(err, http.StatusUnauthorized))
}

func TestClient_ErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("<html>gateway says no</html>"))
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, tokenstore.NewMemoryStorage())
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP 503: Service Unavailable", err.Error())
	assert.True(t, client.IsStatus(err, http.StatusServiceUnavailable))
}

func TestClient_TransportFailureHasNoStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, err := client.New(srv.URL, tokenstore.NewMemoryStorage())
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	require.Error(t, err)
	assert.False(t, client.IsStatus(err, http.StatusInternalServerError))
	assert.True(t, client.IsStatus(err, 0))
	assert.NotEmpty(t, err.Error())
}

func TestClient_TokenWriteThrough(t *testing.T) {
	storage := tokenstore.NewMemoryStorage()
	c, err := client.New("http://localhost:0", storage)
	require.NoError(t, err)

	assert.False(t, c.IsAuthenticated())

	require.NoError(t, c.SetToken("tok-1"))
	assert.True(t, c.IsAuthenticated())

	stored, err := storage.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored)

	require.NoError(t, c.ClearToken())
	assert.False(t, c.IsAuthenticated())
	assert.False(t, storage.Has())
}

func TestClient_LoadsPersistedTokenOnConstruction(t *testing.T) {
	storage := tokenstore.NewMemoryStorage()
	require.NoError(t, storage.Set("persisted"))

	c, err := client.New("http://localhost:0", storage)
	require.NoError(t, err)

	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, "persisted", c.Token())
}
