// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vintagecomics/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new customer account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created customer's basic information.
type SignupOutput struct {
	Customer *entity.Customer
}

// LoginOutput returns the raw session token and the created session after a
// successful login. The token goes into the cookie; only its hash is stored.
type LoginOutput struct {
	Token   string
	Session *entity.Session
}

// SessionOutput returns the identity snapshot held by an active session.
type SessionOutput struct {
	Session *entity.Session
}

// AccountUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Signup creates a new customer account with a bcrypt-hashed password.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout ends the session identified by the raw cookie token.
	// Logging out with no or an unknown token is not an error.
	Logout(ctx context.Context, token string) error

	// GetSession resolves the raw cookie token to an active session.
	GetSession(ctx context.Context, token string) (*SessionOutput, error)
}
