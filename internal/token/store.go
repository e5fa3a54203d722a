// Package token persists the session token between CLI invocations.
package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultFileName = "token"

// Store holds a single opaque session token in a plain-text file.
// Absence of the file means no one is logged in.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore places the token under ~/.blogctl, unless
// BLOGCTL_TOKEN_FILE overrides the location.
func DefaultStore() (*Store, error) {
	if path := os.Getenv("BLOGCTL_TOKEN_FILE"); path != "" {
		return NewStore(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return NewStore(filepath.Join(home, ".blogctl", defaultFileName)), nil
}

// Save writes the token, overwriting any prior value.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// Read returns the stored token, or "" when none is set.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
