package usecase

import (
	"context"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order read and lifecycle operations.
type OrderUsecase interface {
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// GetOrderQR renders the tracking QR code (PNG) for an order.
	GetOrderQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// UpdateOrderStatus applies a forward-only fulfilment transition. Admin only.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)

	// UpdatePaymentStatus reconciles the local payment state after a gateway
	// refund (succeeded -> refunded only). Admin only.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
}
