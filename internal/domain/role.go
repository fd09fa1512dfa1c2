package domain

// Role represents a platform role attached to a user account
type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleApplicant Role = "applicant"
	RoleAdmin     Role = "admin"
)

// AllRoles contains all valid roles in order
var AllRoles = []Role{RoleRecruiter, RoleApplicant, RoleAdmin}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleRecruiter, RoleApplicant, RoleAdmin:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a user-friendly display name for the role
func (r Role) DisplayName() string {
	switch r {
	case RoleRecruiter:
		return "Recruiter"
	case RoleApplicant:
		return "Applicant"
	case RoleAdmin:
		return "Administrator"
	default:
		return string(r)
	}
}

// ParseRole converts a string into a Role, rejecting unknown values
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
