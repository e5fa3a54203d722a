package client

import "blogctl/internal/token"

// State is the session guard's view of the current user.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Guard decides whether a protected interaction may proceed, based on
// token presence alone. A stale token is only discovered when a protected
// call later fails with ErrUnauthorized.
type Guard struct {
	tokens *token.Store
}

func NewGuard(tokens *token.Store) *Guard {
	return &Guard{tokens: tokens}
}

func (g *Guard) State() (State, error) {
	tok, err := g.tokens.Read()
	if err != nil {
		return Anonymous, err
	}
	if tok == "" {
		return Anonymous, nil
	}
	return Authenticated, nil
}

// Require returns the stored token, or ErrAnonymous when there is none.
func (g *Guard) Require() (string, error) {
	tok, err := g.tokens.Read()
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", ErrAnonymous
	}
	return tok, nil
}
