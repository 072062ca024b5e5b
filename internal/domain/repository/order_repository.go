package repository

import (
	"context"
	"errors"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are only ever created after a successful gateway charge.
type OrderRepository interface {
	// Create persists a new order with its item snapshots.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus sets the fulfilment status of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdatePaymentStatus sets the payment status of an order.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}
