package stubapi

import (
	"net/http"
	"time"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	respondData(w, http.StatusOK, s.store.statsFor(user))
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	if user.CompanyID == nil {
		respondData(w, http.StatusOK, []domain.Job{})
		return
	}
	respondData(w, http.StatusOK, s.store.jobsForCompany(*user.CompanyID))
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	if user.CompanyID == nil {
		respondError(w, http.StatusBadRequest, "Recruiter has no company")
		return
	}

	var input domain.JobInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Title == "" || input.Description == "" {
		respondError(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	status := input.Status
	if status == "" {
		status = domain.JobStatusOpen
	}
	if !status.IsValid() {
		respondError(w, http.StatusBadRequest, "Invalid job status")
		return
	}

	now := time.Now()
	job := domain.Job{
		ID:           uuid.New(),
		CompanyID:    *user.CompanyID,
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		SalaryRange:  input.SalaryRange,
		Requirements: input.Requirements,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.store.saveJob(job)
	respondData(w, http.StatusOK, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	job, ok := s.store.job(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	if user.Role != domain.RoleAdmin && (user.CompanyID == nil || job.CompanyID != *user.CompanyID) {
		respondError(w, http.StatusForbidden, "Job belongs to another company")
		return
	}

	var input domain.JobInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	job.Location = input.Location
	job.SalaryRange = input.SalaryRange
	job.Requirements = input.Requirements
	if input.Status != "" {
		if !input.Status.IsValid() {
			respondError(w, http.StatusBadRequest, "Invalid job status")
			return
		}
		job.Status = input.Status
	}
	job.UpdatedAt = time.Now()
	s.store.saveJob(job)
	respondData(w, http.StatusOK, job)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	job, ok := s.store.job(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	if user.Role != domain.RoleAdmin && (user.CompanyID == nil || job.CompanyID != *user.CompanyID) {
		respondError(w, http.StatusForbidden, "Job belongs to another company")
		return
	}
	s.store.deleteJob(id)
	respondData(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}
