// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an individual buyer account. Credentials are stored alongside the
// profile because email/password is the only supported authentication method.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name or real name.
	Email        string    // The user's login identifier; unique across users.
	Phone        string    // Optional contact phone number.
	Address      Address   // Structured shipping address.
	PasswordHash string    // The bcrypt-hashed password. Never serialized outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
