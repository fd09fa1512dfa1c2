package stubapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/stubapi"
	"github.com/ari/talentbridge/internal/testutil"
	"github.com/ari/talentbridge/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	backend := stubapi.NewServer(stubapi.Options{
		JWTSecret:          "test-secret",
		RateLimitPerMinute: 1, // refill slow enough to be irrelevant here
		RateLimitBurst:     3,
	})
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, tokenstore.NewMemoryStorage())
	require.NoError(t, err)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.DashboardStats(ctx)
		require.NoError(t, err, "request %d should be within the burst", i+1)
	}

	_, err = c.DashboardStats(ctx)
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusTooManyRequests))
	assert.Equal(t, "Rate limit exceeded", err.Error())
}

func TestRateLimitIsPerUser(t *testing.T) {
	backend := stubapi.NewServer(stubapi.Options{
		JWTSecret:          "test-secret",
		RateLimitPerMinute: 1,
		RateLimitBurst:     2,
	})
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)
	ctx := context.Background()

	first, err := client.New(srv.URL, tokenstore.NewMemoryStorage())
	require.NoError(t, err)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, first)

	second, err := client.New(srv.URL, tokenstore.NewMemoryStorage())
	require.NoError(t, err)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, second)

	// Exhaust the first user's budget.
	for i := 0; i < 2; i++ {
		_, err := first.DashboardStats(ctx)
		require.NoError(t, err)
	}
	_, err = first.DashboardStats(ctx)
	require.Error(t, err)

	// The second user is unaffected.
	_, err = second.DashboardStats(ctx)
	assert.NoError(t, err)
}

func TestAuthEndpointsAreNotRateLimited(t *testing.T) {
	backend := stubapi.NewServer(stubapi.Options{
		JWTSecret:          "test-secret",
		RateLimitPerMinute: 1,
		RateLimitBurst:     1,
	})
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, tokenstore.NewMemoryStorage())
	require.NoError(t, err)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)
	ctx := context.Background()

	// A locked-out user must still be able to check who they are and sign out.
	_, err = c.DashboardStats(ctx)
	require.NoError(t, err)
	_, err = c.DashboardStats(ctx)
	require.Error(t, err)

	_, err = c.Me(ctx)
	assert.NoError(t, err)
	assert.NoError(t, c.Logout(ctx))
}
