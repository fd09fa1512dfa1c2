package session

import (
	"errors"
	"regexp"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
)

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 6

// Pre-flight validation errors, surfaced before any request is issued
var (
	ErrEmailRequired       = errors.New("email is required")
	ErrEmailInvalid        = errors.New("email format is invalid")
	ErrPasswordRequired    = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrFirstNameRequired   = errors.New("first name is required")
	ErrLastNameRequired    = errors.New("last name is required")
	ErrCompanyNameRequired = errors.New("company name is required for recruiters")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateLogin checks credentials before contacting the backend
func ValidateLogin(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateRegistration checks a registration payload before contacting
// the backend.
func ValidateRegistration(input client.RegisterInput) error {
	if input.Email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(input.Email) {
		return ErrEmailInvalid
	}
	if input.Password == "" {
		return ErrPasswordRequired
	}
	if len(input.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if input.FirstName == "" {
		return ErrFirstNameRequired
	}
	if input.LastName == "" {
		return ErrLastNameRequired
	}
	if !input.Role.IsValid() {
		return domain.ErrInvalidRole
	}
	if input.Role == domain.RoleRecruiter && input.Company != nil && input.Company.Name == "" {
		return ErrCompanyNameRequired
	}
	return nil
}
