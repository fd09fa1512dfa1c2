package client_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
	"github.com/ari/talentbridge/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RegisterDoesNotStoreToken(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, storage := ts.NewClient(t)

	resp, err := c.Register(context.Background(), testutil.NewUserBuilder().Input())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// The client hands the token back; persisting it is the session's job.
	assert.False(t, c.IsAuthenticated())
	assert.False(t, storage.Has())
}

func TestClient_ResumeUploadAndDownload(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)
	ctx := context.Background()

	stored, err := c.UploadResume(ctx, "resume.txt", strings.NewReader("Go and SQL experience"))
	require.NoError(t, err)
	assert.Equal(t, domain.FileTypeResume, stored.Type)
	assert.Equal(t, "resume.txt", stored.Name)

	data, err := c.DownloadFile(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL experience", string(data))
}

func TestClient_UploadFileRejectsUnknownType(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)

	_, err := c.UploadFile(context.Background(), "x.txt", domain.FileType("spreadsheet"), strings.NewReader("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
}

func TestClient_ExportResumePDF(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)

	data, err := c.ExportResumePDF(context.Background(), "Jane Doe\nBackend Engineer")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "export should be a PDF payload")
}

func TestClient_BinaryRequestSurfacesEnvelopeError(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)

	_, err := c.DownloadFile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusNotFound))
}

func TestClient_RoleGateOnServer(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c) // applicant

	_, err := c.CreateJob(context.Background(), domain.JobInput{Title: "Nope", Description: "x"})
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusForbidden))
}

func TestClient_JobRequirementsSurviveWire(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().AsRecruiter("Acme").BuildAndAuthenticate(t, c)
	ctx := context.Background()

	created, err := c.CreateJob(ctx, domain.JobInput{
		Title:        "Backend Engineer",
		Description:  "Build things",
		Requirements: domain.Requirements{"Go", "PostgreSQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Requirements{"Go", "PostgreSQL"}, created.Requirements)

	jobs, err := c.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.Requirements{"Go", "PostgreSQL"}, jobs[0].Requirements)
}
