package usecase

import (
	"context"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines a cart upsert. The quantity replaces any existing
// line for the same (user, medicine) pair.
type AddToCartInput struct {
	UserID     uuid.UUID
	MedicineID uuid.UUID
	Quantity   int
}

// RemoveFromCartInput defines a cart line removal.
type RemoveFromCartInput struct {
	UserID     uuid.UUID
	MedicineID uuid.UUID
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	AddToCart(ctx context.Context, input *AddToCartInput) (*entity.CartEntry, error)
	RemoveFromCart(ctx context.Context, input *RemoveFromCartInput) error
	GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error)
}
