// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the core account entity. It is created at signup, read at login
// and never mutated afterwards.
type Customer struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the customer.
	Email        string    // The customer's email, unique and used as the login identifier.
	PasswordHash string    // Stores the bcrypt-hashed password. Never exposed outside the domain.
	FirstName    string    // The customer's first name.
	LastName     string    // The customer's last name.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
