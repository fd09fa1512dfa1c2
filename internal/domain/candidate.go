package domain

import (
	"time"

	"github.com/google/uuid"
)

// CandidateStatus represents a candidate's position in the pipeline
type CandidateStatus string

const (
	CandidateStatusNew       CandidateStatus = "new"
	CandidateStatusScreening CandidateStatus = "screening"
	CandidateStatusInterview CandidateStatus = "interview"
	CandidateStatusOffer     CandidateStatus = "offer"
	CandidateStatusHired     CandidateStatus = "hired"
	CandidateStatusRejected  CandidateStatus = "rejected"
)

// AllCandidateStatuses contains all valid pipeline statuses in order
var AllCandidateStatuses = []CandidateStatus{
	CandidateStatusNew,
	CandidateStatusScreening,
	CandidateStatusInterview,
	CandidateStatusOffer,
	CandidateStatusHired,
	CandidateStatusRejected,
}

// IsValid checks if a candidate status is valid
func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateStatusNew, CandidateStatusScreening, CandidateStatusInterview,
		CandidateStatusOffer, CandidateStatusHired, CandidateStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s CandidateStatus) String() string {
	return string(s)
}

// Candidate is an applicant as seen from the recruiter side of the
// pipeline for one posting.
type Candidate struct {
	ID        uuid.UUID       `json:"id"`
	JobID     uuid.UUID       `json:"jobId"`
	UserID    uuid.UUID       `json:"userId"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Status    CandidateStatus `json:"status"`
	AppliedAt time.Time       `json:"appliedAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Application is a submission from the applicant side.
type Application struct {
	ID          uuid.UUID  `json:"id"`
	JobID       uuid.UUID  `json:"jobId"`
	UserID      uuid.UUID  `json:"userId"`
	ResumeID    *uuid.UUID `json:"resumeId,omitempty"`
	CoverLetter string     `json:"coverLetter,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ApplicationInput is the payload for applying to a posting
type ApplicationInput struct {
	JobID       uuid.UUID  `json:"jobId"`
	ResumeID    *uuid.UUID `json:"resumeId,omitempty"`
	CoverLetter string     `json:"coverLetter,omitempty"`
}
