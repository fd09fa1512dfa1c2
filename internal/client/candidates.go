package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

// ListCandidates fetches the candidate pipeline, optionally narrowed to
// one posting.
func (c *Client) ListCandidates(ctx context.Context, jobID *uuid.UUID) ([]domain.Candidate, error) {
	path := "/candidates"
	if jobID != nil {
		path += "?jobId=" + url.QueryEscape(jobID.String())
	}
	var candidates []domain.Candidate
	if err := c.do(ctx, http.MethodGet, path, nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

type candidateStatusRequest struct {
	Status domain.CandidateStatus `json:"status"`
}

// UpdateCandidateStatus moves a candidate through the pipeline
func (c *Client) UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) (*domain.Candidate, error) {
	if !status.IsValid() {
		return nil, wrapTransport(domain.ErrInvalidCandidateStatus)
	}
	var candidate domain.Candidate
	err := c.do(ctx, http.MethodPut, "/candidates/"+id.String()+"/status", candidateStatusRequest{Status: status}, &candidate)
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}
