package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/ari/talentbridge/internal/access"
	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/config"
	"github.com/ari/talentbridge/internal/domain"
	"github.com/ari/talentbridge/internal/session"
	"github.com/ari/talentbridge/internal/tokenstore"
)

// app bundles the injected dependencies of every command. One instance
// per invocation; nothing is a package-level singleton.
type app struct {
	cfg     *config.Config
	client  *client.Client
	session *session.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	storage, err := tokenstore.NewFileStorage(cfg.TokenDir)
	if err != nil {
		return nil, err
	}
	c, err := client.New(cfg.APIBaseURL, storage,
		client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	if err != nil {
		return nil, err
	}

	s := session.New(c)
	s.Init(context.Background())

	return &app{cfg: cfg, client: c, session: s}, nil
}

// guard enforces the access gate before a role-specific command runs
func (a *app) guard(requiredRole domain.Role) error {
	switch access.Evaluate(access.Snapshot(a.session), requiredRole) {
	case access.DecisionSignIn:
		return errors.New("not signed in; run `talentctl login` first")
	case access.DecisionDenied:
		user := a.session.CurrentUser()
		return errors.New(access.DeniedMessage(user.Role, requiredRole))
	case access.DecisionGrant:
		return nil
	default:
		return errors.New("session not initialized")
	}
}

// confirm asks before a destructive operation is issued
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// splitList turns a comma-separated flag value into a clean slice
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
