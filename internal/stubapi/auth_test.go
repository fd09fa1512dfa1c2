package stubapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
	"github.com/ari/talentbridge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	ctx := context.Background()

	testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, c)

	tests := []struct {
		name       string
		input      client.RegisterInput
		wantStatus int
		wantMsg    string
	}{
		{
			name:  "successful registration",
			input: testutil.NewUserBuilder().Input(),
		},
		{
			name:  "recruiter with company",
			input: testutil.NewUserBuilder().AsRecruiter("Acme").Input(),
		},
		{
			name:       "duplicate email",
			input:      testutil.NewUserBuilder().WithEmail("taken@example.com").Input(),
			wantStatus: http.StatusConflict,
			wantMsg:    "Email already registered",
		},
		{
			name: "invalid role",
			input: client.RegisterInput{
				Email: "x@example.com", Password: "secret123",
				FirstName: "X", LastName: "Y", Role: "manager",
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid role",
		},
		{
			name: "missing name",
			input: client.RegisterInput{
				Email: "y@example.com", Password: "secret123", Role: domain.RoleApplicant,
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.Register(ctx, tt.input)

			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.True(t, client.IsStatus(err, tt.wantStatus))
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, tt.input.Email, resp.User.Email)
			if tt.input.Role == domain.RoleRecruiter {
				assert.NotNil(t, resp.User.CompanyID)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, c)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "successful login", email: user.Email, password: password},
		{name: "wrong password", email: user.Email, password: "wrongpassword", wantErr: true},
		{name: "unknown account", email: "nobody@example.com", password: password, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.Login(ctx, tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, client.IsStatus(err, http.StatusUnauthorized))
				assert.Equal(t, "Invalid credentials", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, resp.User.ID)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	ctx := context.Background()

	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)

	_, err := c.Me(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))

	// The client still holds the token, but the backend no longer honors it.
	_, err = c.Me(ctx)
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusUnauthorized))
}

func TestPasswordResetFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	ctx := context.Background()

	user, oldPassword := testutil.NewUserBuilder().Build(t, c)

	msg, err := c.RequestPasswordReset(ctx, user.Email)
	require.NoError(t, err)
	assert.NotContains(t, msg, user.Email, "message must not reveal account existence")

	// The same message comes back for an unknown address.
	unknownMsg, err := c.RequestPasswordReset(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, msg, unknownMsg)

	token := ts.Backend.CreateResetToken(user.ID)
	_, err = c.ResetPassword(ctx, token, "newsecret")
	require.NoError(t, err)

	_, err = c.Login(ctx, user.Email, oldPassword)
	require.Error(t, err, "old password must stop working")

	_, err = c.Login(ctx, user.Email, "newsecret")
	require.NoError(t, err)

	// Tokens are single use.
	_, err = c.ResetPassword(ctx, token, "anothersecret")
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusBadRequest))
}

func TestPasswordResetRejectsShortPassword(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, c)
	token := ts.Backend.CreateResetToken(user.ID)

	_, err := c.ResetPassword(ctx, token, "abcde")
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusBadRequest))
}

func TestProtectedEndpointRejectsBadTokens(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.APIURL("/auth/me"), nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
		})
	}
}

func TestEnvelopeWireShape(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/health"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var health struct {
		Status string `json:"status"`
	}
	testutil.AssertDataResponse(t, resp, &health)
	assert.Equal(t, "ok", health.Status)

	errResp, err := http.Get(ts.APIURL("/auth/me"))
	require.NoError(t, err)
	defer errResp.Body.Close()
	testutil.AssertErrorResponse(t, errResp, http.StatusUnauthorized, "Authorization header required")
}
