// Package access decides whether the current session may see a view.
package access

import (
	"fmt"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/ari/talentbridge/internal/session"
)

// Decision is what a guarded view should render
type Decision int

const (
	// DecisionLoading means the session is not yet determined
	DecisionLoading Decision = iota
	// DecisionSignIn means no one is signed in; show the sign-in prompt
	DecisionSignIn
	// DecisionDenied means the signed-in role does not match the required one
	DecisionDenied
	// DecisionGrant means the protected content may be shown
	DecisionGrant
)

// String returns the name of the decision
func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionSignIn:
		return "sign-in"
	case DecisionDenied:
		return "denied"
	case DecisionGrant:
		return "grant"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// State is the session snapshot the gate decides on. It carries no
// memory of its own; an identical snapshot always yields an identical
// decision.
type State struct {
	Initialized   bool
	Authenticated bool
	Role          domain.Role
}

// Snapshot captures the gate inputs from a session store
func Snapshot(s *session.Store) State {
	state := State{
		Initialized:   s.Initialized(),
		Authenticated: s.IsAuthenticated(),
	}
	if user := s.CurrentUser(); user != nil {
		state.Role = user.Role
	}
	return state
}

// Evaluate decides what to render. requiredRole == "" means any
// authenticated user is allowed.
func Evaluate(state State, requiredRole domain.Role) Decision {
	if !state.Initialized {
		return DecisionLoading
	}
	if !state.Authenticated {
		return DecisionSignIn
	}
	if requiredRole != "" && state.Role != requiredRole {
		return DecisionDenied
	}
	return DecisionGrant
}

// DeniedMessage names both the actual and the required role so the
// user understands why the view is unavailable.
func DeniedMessage(actual, required domain.Role) string {
	return fmt.Sprintf("access denied: signed in as %s, but this area requires the %s role",
		actual.DisplayName(), required.DisplayName())
}
