// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"fmt"

	"blog_backend/internal/platform/security"
)

var (
	// ErrAuthenticationFailed is returned for bad credentials and for invalid or expired tokens.
	// Callers cannot tell which check failed, and whether the email exists is never revealed.
	ErrAuthenticationFailed = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// errTokenRejected is ErrAuthenticationFailed as seen by the bearer token middleware.
	errTokenRejected = fmt.Errorf("%w: %w", ErrAuthenticationFailed, security.ErrUnauthenticated)
)
