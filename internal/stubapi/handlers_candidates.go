package stubapi

import (
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	if user.CompanyID == nil {
		respondData(w, http.StatusOK, []domain.Candidate{})
		return
	}

	var jobID *uuid.UUID
	if raw := r.URL.Query().Get("jobId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid jobId filter")
			return
		}
		jobID = &id
	}
	respondData(w, http.StatusOK, s.store.candidatesForCompany(*user.CompanyID, jobID))
}

type candidateStatusRequest struct {
	Status domain.CandidateStatus `json:"status"`
}

func (s *Server) handleUpdateCandidateStatus(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid candidate id")
		return
	}

	var req candidateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.Status.IsValid() {
		respondError(w, http.StatusBadRequest, "Invalid candidate status")
		return
	}

	candidate, ok := s.store.candidate(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	job, ok := s.store.job(candidate.JobID)
	if !ok || (user.Role != domain.RoleAdmin && (user.CompanyID == nil || job.CompanyID != *user.CompanyID)) {
		respondError(w, http.StatusForbidden, "Candidate belongs to another company")
		return
	}

	candidate.Status = req.Status
	touch(&candidate)
	s.store.saveCandidate(candidate)
	respondData(w, http.StatusOK, candidate)
}
