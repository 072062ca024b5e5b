package repository

import (
	"context"
	"errors"
	"time"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for admin persistence.
type AdminRepository interface {
	// FindByEmail retrieves a single admin by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// ExistsByEmail reports whether an admin with the given email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new admin entity to the storage.
	Create(ctx context.Context, admin *entity.Admin) error

	// UpdateLastLogin records the time of the most recent successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
