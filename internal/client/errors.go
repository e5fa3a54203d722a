package client

import "errors"

var (
	// ErrAuthentication is returned when the server rejects login credentials.
	ErrAuthentication = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a protected call carries no token or
	// the server rejects the one presented.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when operating on a post that does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrValidation is returned when a required field is empty.
	ErrValidation = errors.New("title and content are required")
	// ErrNetwork is returned on transport failure or an unexpected status.
	ErrNetwork = errors.New("network error")
	// ErrAnonymous is returned by the session guard when no token is stored.
	ErrAnonymous = errors.New("not logged in")
)
