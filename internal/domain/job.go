package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a posting
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// IsValid checks if a job status is valid
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusPaused, JobStatusClosed:
		return true
	}
	return false
}

// Requirements is a list of job requirements. The wire format carries it
// as a JSON-encoded string for backward compatibility with existing
// clients; decoding also accepts a native array.
type Requirements []string

// MarshalJSON encodes the list as a JSON string containing a JSON array.
func (r Requirements) MarshalJSON() ([]byte, error) {
	if r == nil {
		r = Requirements{}
	}
	inner, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}

// UnmarshalJSON accepts either the string-encoded form or a native array.
func (r *Requirements) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = nil
		return nil
	}
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		if inner == "" {
			*r = Requirements{}
			return nil
		}
		var list []string
		if err := json.Unmarshal([]byte(inner), &list); err != nil {
			return err
		}
		*r = list
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*r = list
	return nil
}

// Job is a posting mirrored from the backend. The client keeps no derived
// state for jobs; they are inert records.
type Job struct {
	ID           uuid.UUID    `json:"id"`
	CompanyID    uuid.UUID    `json:"companyId"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location,omitempty"`
	SalaryRange  string       `json:"salaryRange,omitempty"`
	Requirements Requirements `json:"requirements"`
	Status       JobStatus    `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// JobInput is the payload for creating or updating a posting
type JobInput struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location,omitempty"`
	SalaryRange  string       `json:"salaryRange,omitempty"`
	Requirements Requirements `json:"requirements"`
	Status       JobStatus    `json:"status,omitempty"`
}
