package stubapi

import "github.com/google/uuid"

// CreateResetToken mints a password reset token directly in the store,
// standing in for the emailed link.
func (s *Server) CreateResetToken(userID uuid.UUID) string {
	return s.store.createResetToken(userID)
}
