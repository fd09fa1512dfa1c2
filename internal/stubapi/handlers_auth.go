package stubapi

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email     string                 `json:"email"`
	Password  string                 `json:"password"`
	FirstName string                 `json:"firstName"`
	LastName  string                 `json:"lastName"`
	Role      domain.Role            `json:"role"`
	Company   *domain.CompanyProfile `json:"company"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		respondError(w, http.StatusBadRequest, "Email, password and name are required")
		return
	}
	if !req.Role.IsValid() {
		respondError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := domain.User{
		ID:        uuid.New(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		CreatedAt: time.Now(),
	}

	if req.Role == domain.RoleRecruiter && req.Company != nil {
		company := domain.Company{
			ID:        uuid.New(),
			Name:      req.Company.Name,
			Website:   req.Company.Website,
			Industry:  req.Company.Industry,
			Size:      req.Company.Size,
			CreatedAt: time.Now(),
		}
		s.store.saveCompany(company)
		user.CompanyID = &company.ID
	}

	if err := s.store.createAccount(user, hash); err != nil {
		respondError(w, http.StatusConflict, "Email already registered")
		return
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, hash, ok := s.store.userByEmail(req.Email)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondData(w, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if token := bearerToken(r); token != "" {
		s.store.revokeToken(user.ID, token)
	}
	respondData(w, http.StatusOK, map[string]string{"message": "signed out"})
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type passwordResetConfirm struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (s *Server) handlePasswordResetRequest(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// The message does not reveal whether the address exists.
	if user, _, ok := s.store.userByEmail(req.Email); ok {
		// There is no outbound mail here; the token goes to the log so a
		// developer can complete the flow by hand.
		token := s.store.createResetToken(user.ID)
		log.Printf("stubapi: password reset token for %s: %s", req.Email, token)
	}
	respondData(w, http.StatusOK, map[string]string{
		"message": "If the address is registered, a reset link has been sent",
	})
}

func (s *Server) handlePasswordResetConfirm(w http.ResponseWriter, r *http.Request) {
	var req passwordResetConfirm
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Password) < 6 {
		respondError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}
	userID, ok := s.store.consumeResetToken(req.Token)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.store.setPassword(userID, hash)
	respondData(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

func bearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
