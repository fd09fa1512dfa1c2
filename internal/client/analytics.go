package client

import (
	"context"
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
)

// AnalyticsReport is the admin-facing usage summary
type AnalyticsReport struct {
	Users        int `json:"users"`
	Companies    int `json:"companies"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
	ChatMessages int `json:"chatMessages"`
	FilesStored  int `json:"filesStored"`
}

// Analytics fetches the platform usage summary
func (c *Client) Analytics(ctx context.Context) (*AnalyticsReport, error) {
	var report AnalyticsReport
	if err := c.do(ctx, http.MethodGet, "/analytics", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// RateLimits fetches the caller's remaining request budget
func (c *Client) RateLimits(ctx context.Context) (*domain.RateLimitStatus, error) {
	var status domain.RateLimitStatus
	if err := c.do(ctx, http.MethodGet, "/analytics/rate-limits", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// AnalyticsHealth fetches the analytics subsystem health
func (c *Client) AnalyticsHealth(ctx context.Context) (*domain.HealthStatus, error) {
	var health domain.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/analytics/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Health fetches the backend liveness report
func (c *Client) Health(ctx context.Context) (*domain.HealthStatus, error) {
	var health domain.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Info fetches the backend build description
func (c *Client) Info(ctx context.Context) (*domain.ServerInfo, error) {
	var info domain.ServerInfo
	if err := c.do(ctx, http.MethodGet, "/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
