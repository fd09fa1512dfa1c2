package domain

import "errors"

// Validation errors
var (
	ErrInvalidRole            = errors.New("invalid role")
	ErrInvalidJobStatus       = errors.New("invalid job status")
	ErrInvalidCandidateStatus = errors.New("invalid candidate status")
	ErrInvalidFileType        = errors.New("invalid file type")
)

// ErrNotAuthenticated is returned by operations that need a signed-in session
var ErrNotAuthenticated = errors.New("not authenticated")
