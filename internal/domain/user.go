package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity of the signed-in account as reported by the backend.
// Immutable once fetched; replaced wholesale by a re-fetch.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      Role       `json:"role"`
	CompanyID *uuid.UUID `json:"companyId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CompanyProfile carries the company details supplied when a recruiter
// registers. Only meaningful for RoleRecruiter.
type CompanyProfile struct {
	Name     string `json:"name"`
	Website  string `json:"website,omitempty"`
	Industry string `json:"industry,omitempty"`
	Size     string `json:"size,omitempty"`
}
