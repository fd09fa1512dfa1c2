// Package tokenstore persists the session token across restarts.
// Durable storage is the authority for the token; the client keeps an
// in-memory copy that is written through on every mutation.
package tokenstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenFileName is the single well-known key the session token lives under.
const TokenFileName = "talentbridge_token"

// Storage is a durable get/set/remove capability for one opaque string.
type Storage interface {
	// Get returns the stored token, or "" when none is stored.
	Get() (string, error)
	// Set replaces the stored token.
	Set(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// FileStorage keeps the token in a single file with owner-only permissions.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage rooted at dir. When dir is empty
// the user config directory is used.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "talentbridge")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create token dir: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, TokenFileName)}, nil
}

// Path returns the file the token is stored in
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStorage) Set(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// MemoryStorage is an in-process Storage for tests.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
	has   bool
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.has {
		return "", nil
	}
	return s.token, nil
}

func (s *MemoryStorage) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.has = true
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.has = false
	return nil
}

// Has reports whether a token is currently stored. Test helper.
func (s *MemoryStorage) Has() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.has
}
