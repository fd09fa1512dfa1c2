package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirements_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		reqs domain.Requirements
		want string
	}{
		{
			name: "two entries",
			reqs: domain.Requirements{"Go", "SQL"},
			want: `"[\"Go\",\"SQL\"]"`,
		},
		{
			name: "empty list",
			reqs: domain.Requirements{},
			want: `"[]"`,
		},
		{
			name: "nil encodes as empty list",
			reqs: nil,
			want: `"[]"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.reqs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestRequirements_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Requirements
		wantErr bool
	}{
		{
			name:  "string-encoded array",
			input: `"[\"Go\",\"SQL\"]"`,
			want:  domain.Requirements{"Go", "SQL"},
		},
		{
			name:  "native array",
			input: `["Go","SQL"]`,
			want:  domain.Requirements{"Go", "SQL"},
		},
		{
			name:  "null",
			input: `null`,
			want:  nil,
		},
		{
			name:  "empty string",
			input: `""`,
			want:  domain.Requirements{},
		},
		{
			name:    "string that is not an array",
			input:   `"not json"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Requirements
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequirements_RoundTripThroughJob(t *testing.T) {
	job := domain.Job{
		Title:        "Backend Engineer",
		Requirements: domain.Requirements{"Go", "Kubernetes"},
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded domain.Job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, job.Requirements, decoded.Requirements)
}

func TestJobStatus_IsValid(t *testing.T) {
	assert.True(t, domain.JobStatusOpen.IsValid())
	assert.True(t, domain.JobStatusPaused.IsValid())
	assert.True(t, domain.JobStatusClosed.IsValid())
	assert.False(t, domain.JobStatus("archived").IsValid())
	assert.False(t, domain.JobStatus("").IsValid())
}
