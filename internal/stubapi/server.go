package stubapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Options configures a Server
type Options struct {
	JWTSecret          string
	JWTExpirationHours int
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Server serves the TalentBridge REST contract from memory.
type Server struct {
	store              *Store
	hub                *chatHub
	limits             *limiterRegistry
	jwtSecret          string
	jwtExpirationHours int
	startedAt          time.Time
}

// NewServer creates a Server with empty state
func NewServer(opts Options) *Server {
	if opts.JWTSecret == "" {
		opts.JWTSecret = "dev-only-secret"
	}
	if opts.JWTExpirationHours <= 0 {
		opts.JWTExpirationHours = 24
	}
	if opts.RateLimitPerMinute <= 0 {
		opts.RateLimitPerMinute = 120
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 30
	}
	return &Server{
		store:              NewStore(),
		hub:                newChatHub(),
		limits:             newLimiterRegistry(opts.RateLimitPerMinute, opts.RateLimitBurst),
		jwtSecret:          opts.JWTSecret,
		jwtExpirationHours: opts.JWTExpirationHours,
		startedAt:          time.Now(),
	}
}

// Router builds the HTTP handler for the full endpoint surface
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/info", s.handleInfo)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/password-reset/request", s.handlePasswordResetRequest)
			r.Post("/password-reset/confirm", s.handlePasswordResetConfirm)

			r.Group(func(r chi.Router) {
				r.Use(s.auth)
				r.Get("/me", s.handleMe)
				r.Post("/logout", s.handleLogout)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(s.auth)
			r.Use(s.rateLimit)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", s.handleDashboardStats)
				r.With(s.requireRole(domain.RoleRecruiter)).Get("/jobs", s.handleListJobs)
				r.With(s.requireRole(domain.RoleRecruiter)).Post("/jobs", s.handleCreateJob)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Use(s.requireRole(domain.RoleRecruiter))
				r.Put("/{id}", s.handleUpdateJob)
				r.Delete("/{id}", s.handleDeleteJob)
			})

			r.Route("/candidates", func(r chi.Router) {
				r.Use(s.requireRole(domain.RoleRecruiter))
				r.Get("/", s.handleListCandidates)
				r.Put("/{id}/status", s.handleUpdateCandidateStatus)
			})

			r.Route("/applicant", func(r chi.Router) {
				r.Use(s.requireRole(domain.RoleApplicant))
				r.Post("/resumes/upload", s.handleUploadResume)
				r.Post("/resumes/parse", s.handleParseResume)
				r.Post("/ai/analyze-job", s.handleAnalyzeJob)
				r.Post("/ai/generate-resume", s.handleGenerateResume)
				r.Post("/ai/generate-cover-letter", s.handleGenerateCoverLetter)
				r.Post("/export/resume", s.handleExportResume)
				r.Post("/applications", s.handleApply)
				r.Get("/applications", s.handleListApplications)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Post("/message", s.handleChatMessage)
				r.Get("/history", s.handleChatHistory)
				r.Get("/suggestions", s.handleChatSuggestions)
				r.Get("/ws", s.handleChatSocket)
			})

			r.Route("/files", func(r chi.Router) {
				r.Post("/upload", s.handleUploadFile)
				r.Get("/user/files", s.handleListUserFiles)
				r.Get("/{id}", s.handleGetFile)
				r.Get("/{id}/download", s.handleDownloadFile)
				r.Delete("/{id}", s.handleDeleteFile)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", s.handleListCompanies)
				r.Get("/{id}", s.handleGetCompany)
				r.Put("/{id}", s.handleUpdateCompany)
				r.Get("/{id}/users", s.handleCompanyUsers)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/rate-limits", s.handleRateLimits)
				r.Get("/health", s.handleHealth)
				r.With(s.requireRole(domain.RoleAdmin)).Get("/", s.handleAnalytics)
			})
		})
	})

	return r
}

// respondData writes the success envelope
func respondData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// respondError writes the error envelope
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{"message": message},
	})
}

func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
