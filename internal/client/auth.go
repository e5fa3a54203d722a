// Package client implements the gateways the CLI speaks to the blog API
// with, the session guard in front of them, and the listing reconciler.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"blogctl/internal/models"
	"blogctl/internal/token"
)

// Auth exchanges credentials for a session token and owns persisting it.
type Auth struct {
	baseURL string
	client  *http.Client
	tokens  *token.Store
}

func NewAuth(baseURL string, tokens *token.Store) *Auth {
	return &Auth{baseURL: baseURL, client: http.DefaultClient, tokens: tokens}
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login sends credentials to the authentication endpoint, persists the
// returned token, and returns it. There is no retry; a failed attempt
// needs a fresh user-initiated one.
func (a *Auth) Login(email, password string) (string, error) {
	body, err := json.Marshal(models.Credentials{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encoding credentials: %w", err)
	}

	resp, err := a.client.Post(a.baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: server returned status %d", ErrAuthentication, resp.StatusCode)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", fmt.Errorf("%w: decoding login response: %v", ErrAuthentication, err)
	}
	if login.Token == "" {
		return "", fmt.Errorf("%w: login response carried no token", ErrAuthentication)
	}

	if err := a.tokens.Save(login.Token); err != nil {
		return "", fmt.Errorf("persisting token: %w", err)
	}
	return login.Token, nil
}

// Logout discards the stored token. The remote contract has no logout
// endpoint; the server-side session simply expires.
func (a *Auth) Logout() error {
	return a.tokens.Clear()
}
