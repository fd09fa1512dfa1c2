package client

import (
	"context"
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

// ListCompanies fetches the company directory
func (c *Client) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := c.do(ctx, http.MethodGet, "/companies", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// GetCompany fetches one company profile
func (c *Client) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	if err := c.do(ctx, http.MethodGet, "/companies/"+id.String(), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// UpdateCompany replaces a company profile
func (c *Client) UpdateCompany(ctx context.Context, id uuid.UUID, input domain.CompanyInput) (*domain.Company, error) {
	var company domain.Company
	if err := c.do(ctx, http.MethodPut, "/companies/"+id.String(), input, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// CompanyUsers fetches the accounts attached to a company
func (c *Client) CompanyUsers(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/companies/"+id.String()+"/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
