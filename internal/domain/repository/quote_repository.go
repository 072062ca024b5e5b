package repository

import (
	"context"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// QuoteRepository defines the operations for bulk-quote request persistence.
type QuoteRepository interface {
	// Create persists a new quote request.
	Create(ctx context.Context, quote *entity.QuoteRequest) error

	// ListByUser returns a user's quote requests, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.QuoteRequest, error)
}
