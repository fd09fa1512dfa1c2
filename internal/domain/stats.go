package domain

// DashboardStats is the role-specific summary shown on the dashboard.
// The backend fills only the fields relevant to the caller's role.
type DashboardStats struct {
	// Recruiter
	ActiveJobs      int `json:"activeJobs,omitempty"`
	TotalCandidates int `json:"totalCandidates,omitempty"`
	NewApplications int `json:"newApplications,omitempty"`
	Interviews      int `json:"interviews,omitempty"`

	// Applicant
	ApplicationsSubmitted int `json:"applicationsSubmitted,omitempty"`
	DocumentsGenerated    int `json:"documentsGenerated,omitempty"`
	ResumesParsed         int `json:"resumesParsed,omitempty"`

	// Admin
	TotalUsers     int `json:"totalUsers,omitempty"`
	TotalCompanies int `json:"totalCompanies,omitempty"`
}

// RateLimitStatus reports the caller's remaining request budget
type RateLimitStatus struct {
	Limit     int     `json:"limit"`
	Remaining float64 `json:"remaining"`
	Burst     int     `json:"burst"`
}

// HealthStatus is the backend liveness report
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}

// ServerInfo describes the backend build serving requests
type ServerInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
}
