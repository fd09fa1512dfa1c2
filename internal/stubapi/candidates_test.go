package stubapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
	"github.com/ari/talentbridge/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	recruiter, _ := ts.NewClient(t)
	testutil.NewUserBuilder().AsRecruiter("Acme").BuildAndAuthenticate(t, recruiter)
	job, err := recruiter.CreateJob(ctx, domain.JobInput{Title: "Backend Engineer", Description: "x"})
	require.NoError(t, err)
	other, err := recruiter.CreateJob(ctx, domain.JobInput{Title: "Frontend Engineer", Description: "x"})
	require.NoError(t, err)

	applicant, _ := ts.NewClient(t)
	applicantUser, _ := testutil.NewUserBuilder().BuildAndAuthenticate(t, applicant)

	app, err := applicant.Apply(ctx, domain.ApplicationInput{
		JobID:       job.ID,
		CoverLetter: "Please consider me",
	})
	require.NoError(t, err)
	assert.Equal(t, "submitted", app.Status)
	assert.Equal(t, applicantUser.ID, app.UserID)

	apps, err := applicant.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, job.ID, apps[0].JobID)

	// The submission shows up in the recruiter's pipeline as a new candidate.
	candidates, err := recruiter.ListCandidates(ctx, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, domain.CandidateStatusNew, candidates[0].Status)
	assert.Equal(t, applicantUser.Email, candidates[0].Email)

	// Filtering by posting.
	filtered, err := recruiter.ListCandidates(ctx, &job.ID)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	empty, err := recruiter.ListCandidates(ctx, &other.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Moving the candidate through the pipeline.
	moved, err := recruiter.UpdateCandidateStatus(ctx, candidates[0].ID, domain.CandidateStatusInterview)
	require.NoError(t, err)
	assert.Equal(t, domain.CandidateStatusInterview, moved.Status)
}

func TestApplyToMissingJob(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)

	_, err := c.Apply(context.Background(), domain.ApplicationInput{JobID: uuid.New()})
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusNotFound))
}

func TestUpdateCandidateStatusValidation(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	recruiter, _ := ts.NewClient(t)
	testutil.NewUserBuilder().AsRecruiter("Acme").BuildAndAuthenticate(t, recruiter)

	// Unknown status is rejected client-side before any request is made.
	_, err := recruiter.UpdateCandidateStatus(ctx, uuid.New(), domain.CandidateStatus("ghosted"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCandidateStatus)

	_, err = recruiter.UpdateCandidateStatus(ctx, uuid.New(), domain.CandidateStatusHired)
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusNotFound))
}

func TestCandidateOwnership(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	recruiter, _ := ts.NewClient(t)
	testutil.NewUserBuilder().AsRecruiter("Acme").BuildAndAuthenticate(t, recruiter)
	job, err := recruiter.CreateJob(ctx, domain.JobInput{Title: "Backend Engineer", Description: "x"})
	require.NoError(t, err)

	applicant, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, applicant)
	_, err = applicant.Apply(ctx, domain.ApplicationInput{JobID: job.ID})
	require.NoError(t, err)

	candidates, err := recruiter.ListCandidates(ctx, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	rival, _ := ts.NewClient(t)
	testutil.NewUserBuilder().AsRecruiter("Globex").BuildAndAuthenticate(t, rival)

	_, err = rival.UpdateCandidateStatus(ctx, candidates[0].ID, domain.CandidateStatusRejected)
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusForbidden))
}
