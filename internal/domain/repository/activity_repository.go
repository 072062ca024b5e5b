package repository

import (
	"context"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository defines the operations for the append-only user-activity log.
type ActivityRepository interface {
	// Create appends a new activity entry.
	Create(ctx context.Context, activity *entity.Activity) error

	// ListByUser returns a user's activity entries, newest first.
	// A non-empty activityType filters by type.
	ListByUser(ctx context.Context, userID uuid.UUID, activityType entity.ActivityType) ([]*entity.Activity, error)
}
