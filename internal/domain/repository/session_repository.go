package repository

import (
	"context"
	"errors"

	"vintagecomics/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session matches a token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for the server-side session store.
// Sessions are looked up by the SHA-256 hash of the client-held cookie token.
type SessionRepository interface {
	// Create persists a new session, representing a logged-in customer.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session record by its token hash.
	FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error)

	// DeleteByTokenHash deletes a session by its token hash, ending the
	// login. Deleting an absent session is not an error.
	DeleteByTokenHash(ctx context.Context, hash string) error
}
