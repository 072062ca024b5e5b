package repository

import (
	"context"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository defines the standard operations for shopping cart persistence.
type CartRepository interface {
	// Upsert writes a cart line in a single atomic statement. The
	// (user, medicine) unique index resolves concurrent writers: the quantity
	// of the winning write replaces any existing line, rows are never duplicated.
	Upsert(ctx context.Context, entry *entity.CartEntry) error

	// Remove deletes the cart line for the given user and medicine, if present.
	Remove(ctx context.Context, userID, medicineID uuid.UUID) error

	// ListByUser returns all cart lines of a user with their medicines populated.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error)
}
