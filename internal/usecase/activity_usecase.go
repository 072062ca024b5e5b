package usecase

import (
	"context"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// LogActivityInput defines one user-activity log entry.
type LogActivityInput struct {
	UserID     uuid.UUID
	Type       string
	MedicineID uuid.UUID
	Quantity   int
}

// QuoteRequestInput defines a bulk-quote request.
type QuoteRequestInput struct {
	UserID     uuid.UUID
	MedicineID uuid.UUID
	Quantity   int
	Message    string
}

// ActivityUsecase defines the interface for the activity log and quote requests.
type ActivityUsecase interface {
	LogActivity(ctx context.Context, input *LogActivityInput) (*entity.Activity, error)

	// ListActivities returns a user's log, optionally filtered by type.
	ListActivities(ctx context.Context, userID uuid.UUID, activityType string) ([]*entity.Activity, error)

	CreateQuoteRequest(ctx context.Context, input *QuoteRequestInput) (*entity.QuoteRequest, error)
	ListQuoteRequests(ctx context.Context, userID uuid.UUID) ([]*entity.QuoteRequest, error)
}
