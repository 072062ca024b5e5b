package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office administrator account. Signup requires the configured
// admin registration code.
type Admin struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the admin.
	Name         string     // The admin's display name.
	Email        string     // The login identifier; unique across admins.
	PasswordHash string     // The bcrypt-hashed password. Never serialized outward.
	LastLogin    *time.Time // Timestamp of the most recent successful login, nil before the first one.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}
