package application

import (
	"errors"

	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the caller is known but may not touch the resource.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnauthenticated means no valid identity was presented.
	ErrUnauthenticated    = errors.New("authentication required")
	ErrConflict           = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidToken       = helpers.ErrInvalidToken
)
