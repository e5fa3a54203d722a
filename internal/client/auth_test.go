package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogctl/internal/models"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decoding credentials: %v", err)
		}
		if creds.Email != "a@b.com" || creds.Password != "x" {
			t.Errorf("unexpected credentials: %+v", creds)
		}

		json.NewEncoder(w).Encode(map[string]string{"token": "T1"})
	}))
	defer srv.Close()

	tokens := newTestTokens(t)
	auth := NewAuth(srv.URL, tokens)

	got, err := auth.Login("a@b.com", "x")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if got != "T1" {
		t.Errorf("expected token 'T1', got %q", got)
	}

	stored, err := tokens.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if stored != "T1" {
		t.Errorf("expected stored token 'T1', got %q", stored)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	tokens := newTestTokens(t)
	auth := NewAuth(srv.URL, tokens)

	_, err := auth.Login("a@b.com", "wrong")
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("expected ErrAuthentication, got %v", err)
	}

	stored, _ := tokens.Read()
	if stored != "" {
		t.Errorf("expected no token persisted after failed login, got %q", stored)
	}
}

func TestLogin_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, newTestTokens(t))

	_, err := auth.Login("a@b.com", "x")
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("expected ErrAuthentication for malformed body, got %v", err)
	}
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	auth := NewAuth(srv.URL, newTestTokens(t))

	_, err := auth.Login("a@b.com", "x")
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("expected ErrAuthentication when response has no token, got %v", err)
	}
}

func TestLogin_NetworkError(t *testing.T) {
	// Nothing listens here.
	auth := NewAuth("http://127.0.0.1:1", newTestTokens(t))

	_, err := auth.Login("a@b.com", "x")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	tokens := newTestTokens(t)
	if err := tokens.Save("T1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	auth := NewAuth("http://unused", tokens)
	if err := auth.Logout(); err != nil {
		t.Fatalf("Logout() error: %v", err)
	}

	stored, _ := tokens.Read()
	if stored != "" {
		t.Errorf("expected token cleared after logout, got %q", stored)
	}
}
