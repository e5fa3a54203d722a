package client

import (
	"errors"
	"path/filepath"
	"testing"

	"blogctl/internal/token"
)

func newTestTokens(t *testing.T) *token.Store {
	t.Helper()
	return token.NewStore(filepath.Join(t.TempDir(), "token"))
}

func TestGuard_Anonymous(t *testing.T) {
	guard := NewGuard(newTestTokens(t))

	state, err := guard.State()
	if err != nil {
		t.Fatalf("State() error: %v", err)
	}
	if state != Anonymous {
		t.Errorf("expected Anonymous with no stored token, got %v", state)
	}
}

func TestGuard_Authenticated(t *testing.T) {
	tokens := newTestTokens(t)
	if err := tokens.Save("T1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	guard := NewGuard(tokens)
	state, err := guard.State()
	if err != nil {
		t.Fatalf("State() error: %v", err)
	}
	if state != Authenticated {
		t.Errorf("expected Authenticated with stored token, got %v", state)
	}
}

func TestGuard_Require_RedirectsToLogin(t *testing.T) {
	guard := NewGuard(newTestTokens(t))

	_, err := guard.Require()
	if !errors.Is(err, ErrAnonymous) {
		t.Errorf("expected ErrAnonymous, got %v", err)
	}
}

func TestGuard_Require_ReturnsToken(t *testing.T) {
	tokens := newTestTokens(t)
	if err := tokens.Save("T1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	guard := NewGuard(tokens)
	tok, err := guard.Require()
	if err != nil {
		t.Fatalf("Require() error: %v", err)
	}
	if tok != "T1" {
		t.Errorf("expected token 'T1', got %q", tok)
	}
}

func TestGuard_LogoutReturnsToAnonymous(t *testing.T) {
	tokens := newTestTokens(t)
	if err := tokens.Save("T1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := tokens.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	guard := NewGuard(tokens)
	state, err := guard.State()
	if err != nil {
		t.Fatalf("State() error: %v", err)
	}
	if state != Anonymous {
		t.Errorf("expected Anonymous after logout, got %v", state)
	}
}

func TestState_String(t *testing.T) {
	if Anonymous.String() != "anonymous" {
		t.Errorf("expected 'anonymous', got %q", Anonymous.String())
	}
	if Authenticated.String() != "authenticated" {
		t.Errorf("expected 'authenticated', got %q", Authenticated.String())
	}
}
