// Package testutil wires the stub backend to real HTTP for tests.
package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/session"
	"github.com/ari/talentbridge/internal/stubapi"
	"github.com/ari/talentbridge/internal/tokenstore"
)

// TestServer binds the in-memory backend to an httptest listener and
// hands out isolated client/session instances against it.
type TestServer struct {
	Backend *stubapi.Server
	HTTP    *httptest.Server
}

// NewTestServer starts a stub backend for one test
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	backend := stubapi.NewServer(stubapi.Options{
		JWTSecret: "test-secret",
		// Generous budget so only the rate-limit tests ever hit it.
		RateLimitPerMinute: 6000,
		RateLimitBurst:     1000,
	})
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)

	return &TestServer{Backend: backend, HTTP: srv}
}

// APIURL returns a full URL for a path under the versioned API prefix
func (ts *TestServer) APIURL(path string) string {
	return ts.HTTP.URL + "/api/v1" + path
}

// NewClient constructs a client with its own in-memory token storage
func (ts *TestServer) NewClient(t *testing.T) (*client.Client, *tokenstore.MemoryStorage) {
	t.Helper()

	storage := tokenstore.NewMemoryStorage()
	c, err := client.New(ts.HTTP.URL, storage)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c, storage
}

// NewSession constructs a session store over a fresh client
func (ts *TestServer) NewSession(t *testing.T) (*session.Store, *client.Client, *tokenstore.MemoryStorage) {
	t.Helper()

	c, storage := ts.NewClient(t)
	return session.New(c), c, storage
}
