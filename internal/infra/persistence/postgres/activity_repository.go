package postgres

import (
	"context"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
// The table is append-only; entries are never updated or deleted.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create appends a new activity entry.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := &model.ActivityModel{
		UserID:     activity.UserID,
		Type:       activity.Type.String(),
		MedicineID: activity.MedicineID,
		Quantity:   activity.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity entry")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// ListByUser returns a user's activity entries, newest first.
// A non-empty activityType filters by type.
func (repo *activityRepository) ListByUser(ctx context.Context, userID uuid.UUID, activityType entity.ActivityType) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activityType != "" {
		query = query.Where("type = ?", activityType.String())
	}

	var models []model.ActivityModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity entries")
	}

	activities := make([]*entity.Activity, 0, len(models))
	for i := range models {
		activities = append(activities, &entity.Activity{
			ID:         models[i].ID,
			UserID:     models[i].UserID,
			Type:       entity.ActivityType(models[i].Type),
			MedicineID: models[i].MedicineID,
			Quantity:   models[i].Quantity,
			CreatedAt:  models[i].CreatedAt,
		})
	}

	return activities, nil
}
