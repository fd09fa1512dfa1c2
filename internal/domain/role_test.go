package domain_test

import (
	"testing"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Role
		wantErr error
	}{
		{name: "recruiter", input: "recruiter", want: domain.RoleRecruiter},
		{name: "applicant", input: "applicant", want: domain.RoleApplicant},
		{name: "admin", input: "admin", want: domain.RoleAdmin},
		{name: "unknown", input: "manager", wantErr: domain.ErrInvalidRole},
		{name: "empty", input: "", wantErr: domain.ErrInvalidRole},
		{name: "case sensitive", input: "Recruiter", wantErr: domain.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseRole(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_DisplayName(t *testing.T) {
	assert.Equal(t, "Recruiter", domain.RoleRecruiter.DisplayName())
	assert.Equal(t, "Applicant", domain.RoleApplicant.DisplayName())
	assert.Equal(t, "Administrator", domain.RoleAdmin.DisplayName())
}
