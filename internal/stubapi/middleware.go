package stubapi

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type contextKey string

const userKey contextKey = "user"

// auth validates the bearer token and attaches the caller's identity
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		userID, err := s.validateToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if s.store.tokenRevoked(userID, parts[1]) {
			respondError(w, http.StatusUnauthorized, "Token revoked")
			return
		}
		user, ok := s.store.userByID(userID)
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unknown user")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole rejects callers whose role does not match
func (s *Server) requireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := currentUser(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if user.Role != role && user.Role != domain.RoleAdmin {
				respondError(w, http.StatusForbidden,
					"Requires the "+role.DisplayName()+" role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// currentUser extracts the authenticated identity from the context
func currentUser(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}

// limiterRegistry keeps one token bucket per user
type limiterRegistry struct {
	mu        sync.Mutex
	limiters  map[uuid.UUID]*rate.Limiter
	perMinute int
	burst     int
}

func newLimiterRegistry(perMinute, burst int) *limiterRegistry {
	return &limiterRegistry{
		limiters:  make(map[uuid.UUID]*rate.Limiter),
		perMinute: perMinute,
		burst:     burst,
	}
}

func (lr *limiterRegistry) limiter(userID uuid.UUID) *rate.Limiter {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	l, ok := lr.limiters[userID]
	if !ok {
		l = rate.NewLimiter(rate.Limit(float64(lr.perMinute)/60.0), lr.burst)
		lr.limiters[userID] = l
	}
	return l
}

// rateLimit applies the per-user request budget
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !s.limits.limiter(user.ID).Allow() {
			respondError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
