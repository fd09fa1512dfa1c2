package stubapi

import (
	"net/http"
	"time"

	"github.com/ari/talentbridge/internal/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, domain.HealthStatus{
		Status:  "ok",
		Version: serverVersion,
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

const serverVersion = "0.3.0-dev"

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, domain.ServerInfo{
		Name:        "talentbridge-devserver",
		Version:     serverVersion,
		Environment: "development",
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	users, companies, jobs, applications, chats, files := s.store.counts()
	respondData(w, http.StatusOK, map[string]int{
		"users":        users,
		"companies":    companies,
		"jobs":         jobs,
		"applications": applications,
		"chatMessages": chats,
		"filesStored":  files,
	})
}

func (s *Server) handleRateLimits(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	limiter := s.limits.limiter(user.ID)
	respondData(w, http.StatusOK, domain.RateLimitStatus{
		Limit:     s.limits.perMinute,
		Remaining: limiter.Tokens(),
		Burst:     limiter.Burst(),
	})
}
