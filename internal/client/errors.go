package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the uniform failure type for every client call. Status is
// the HTTP status of an application error, or 0 for a transport failure.
type APIError struct {
	Status  int
	Message string
	err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.err
}

// IsStatus reports whether err is an APIError with the given HTTP status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// wrapTransport converts a network-level failure into an APIError so
// callers never need to distinguish transport from application failures.
func wrapTransport(err error) *APIError {
	if err == nil {
		return &APIError{Message: "unexpected error"}
	}
	return &APIError{Message: err.Error(), err: err}
}

// errorFromResponse builds an APIError from a non-2xx response, using
// the server-provided message when the body carries one.
func errorFromResponse(resp *http.Response, raw []byte) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
	var env envelope
	if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env.Error != nil && env.Error.Message != "" {
		apiErr.Message = env.Error.Message
	}
	return apiErr
}
