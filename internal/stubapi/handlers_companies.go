package stubapi

import (
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, s.store.listCompanies())
}

func (s *Server) companyFromPath(w http.ResponseWriter, r *http.Request) (domain.Company, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid company id")
		return domain.Company{}, false
	}
	company, ok := s.store.company(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Company not found")
		return domain.Company{}, false
	}
	return company, true
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	company, ok := s.companyFromPath(w, r)
	if !ok {
		return
	}
	respondData(w, http.StatusOK, company)
}

func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())

	company, ok := s.companyFromPath(w, r)
	if !ok {
		return
	}
	if user.Role != domain.RoleAdmin && (user.CompanyID == nil || *user.CompanyID != company.ID) {
		respondError(w, http.StatusForbidden, "Cannot update another company")
		return
	}

	var input domain.CompanyInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Name != "" {
		company.Name = input.Name
	}
	company.Website = input.Website
	company.Industry = input.Industry
	company.Size = input.Size
	company.Description = input.Description
	s.store.saveCompany(company)
	respondData(w, http.StatusOK, company)
}

func (s *Server) handleCompanyUsers(w http.ResponseWriter, r *http.Request) {
	company, ok := s.companyFromPath(w, r)
	if !ok {
		return
	}
	respondData(w, http.StatusOK, s.store.companyUsers(company.ID))
}
