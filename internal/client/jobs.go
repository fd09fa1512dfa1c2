package client

import (
	"context"
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

// DashboardStats fetches the role-specific dashboard summary
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListJobs fetches the caller's job postings
func (c *Client) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, "/dashboard/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob creates a posting
func (c *Client) CreateJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, wrapTransport(domain.ErrInvalidJobStatus)
	}
	var job domain.Job
	if err := c.do(ctx, http.MethodPost, "/dashboard/jobs", input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob replaces a posting. Concurrent updates to the same posting
// are not sequenced; the last response to arrive wins.
func (c *Client) UpdateJob(ctx context.Context, id uuid.UUID, input domain.JobInput) (*domain.Job, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, wrapTransport(domain.ErrInvalidJobStatus)
	}
	var job domain.Job
	if err := c.do(ctx, http.MethodPut, "/jobs/"+id.String(), input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a posting
func (c *Client) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/jobs/"+id.String(), nil, nil)
}
