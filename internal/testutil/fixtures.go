package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

// UserBuilder creates test accounts through the registration endpoint
type UserBuilder struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      domain.Role
	company   *domain.CompanyProfile
}

// NewUserBuilder creates a builder with applicant defaults
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:     fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password:  "testpassword123",
		firstName: "Test",
		lastName:  "User",
		role:      domain.RoleApplicant,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// AsRecruiter switches the builder to a recruiter with a company profile
func (b *UserBuilder) AsRecruiter(companyName string) *UserBuilder {
	b.role = domain.RoleRecruiter
	b.company = &domain.CompanyProfile{Name: companyName}
	return b
}

// Input renders the builder as a registration payload
func (b *UserBuilder) Input() client.RegisterInput {
	return client.RegisterInput{
		Email:     b.email,
		Password:  b.password,
		FirstName: b.firstName,
		LastName:  b.lastName,
		Role:      b.role,
		Company:   b.company,
	}
}

// Build registers the account through the API and returns the identity
// with the raw password.
func (b *UserBuilder) Build(t *testing.T, c *client.Client) (*domain.User, string) {
	t.Helper()

	resp, err := c.Register(context.Background(), b.Input())
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	return &resp.User, b.password
}

// BuildAndAuthenticate registers the account and leaves the client
// holding its token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, c *client.Client) (*domain.User, string) {
	t.Helper()

	resp, err := c.Register(context.Background(), b.Input())
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	if err := c.SetToken(resp.Token); err != nil {
		t.Fatalf("failed to set token: %v", err)
	}
	return &resp.User, resp.Token
}
