package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated login session. The client holds an
// opaque token in a cookie; only a SHA-256 hash of that token is stored here.
// The identity fields are snapshotted at login so getSession never has to
// join back to the customers table.
type Session struct {
	ID         uuid.UUID // The unique ID for this session record.
	CustomerID uuid.UUID // Links this session to the Customer it belongs to.
	TokenHash  string    // SHA-256 hash of the raw session token.
	Email      string    // Customer email at login time.
	FirstName  string    // Customer first name at login time.
	LastName   string    // Customer last name at login time.
	ExpiresAt  time.Time // The exact time when this session becomes invalid.
	CreatedAt  time.Time // Timestamp of when the customer logged in.
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
