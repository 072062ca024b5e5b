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
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Upsert writes a cart line through INSERT .. ON CONFLICT on the
// (user_id, medicine_id) unique index. Concurrent adds for the same line
// resolve inside the database: the last write's quantity wins and no
// duplicate row can ever appear.
func (repo *cartRepository) Upsert(ctx context.Context, entry *entity.CartEntry) error {
	entryM := &model.CartEntryModel{
		UserID:     entry.UserID,
		MedicineID: entry.MedicineID,
		Quantity:   entry.Quantity,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "medicine_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// Remove deletes the cart line for the given user and medicine, if present.
// Removing an absent line is not an error.
func (repo *cartRepository) Remove(ctx context.Context, userID, medicineID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND medicine_id = ?", userID, medicineID).
		Delete(&model.CartEntryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart entry")
	}

	return nil
}

// ListByUser returns all cart lines of a user with their medicines populated.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error) {
	var models []model.CartEntryModel
	if err := repo.db.WithContext(ctx).
		Preload("Medicine").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart entries")
	}

	entries := make([]*entity.CartEntry, 0, len(models))
	for i := range models {
		entries = append(entries, toCartEntryDomain(&models[i]))
	}

	return entries, nil
}

// toCartEntryDomain converts a GORM CartEntryModel to a domain CartEntry entity.
func toCartEntryDomain(data *model.CartEntryModel) *entity.CartEntry {
	if data == nil {
		return nil
	}

	return &entity.CartEntry{
		ID:         data.ID,
		UserID:     data.UserID,
		MedicineID: data.MedicineID,
		Quantity:   data.Quantity,
		Medicine:   toMedicineDomain(data.Medicine),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
