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

// quoteRepository implements the domain.QuoteRepository interface using GORM.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

// Create persists a new quote request.
func (repo *quoteRepository) Create(ctx context.Context, quote *entity.QuoteRequest) error {
	quoteM := &model.QuoteRequestModel{
		UserID:     quote.UserID,
		MedicineID: quote.MedicineID,
		Quantity:   quote.Quantity,
		Message:    quote.Message,
	}

	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote request")
	}

	quote.ID = quoteM.ID
	quote.CreatedAt = quoteM.CreatedAt

	return nil
}

// ListByUser returns a user's quote requests, newest first.
func (repo *quoteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.QuoteRequest, error) {
	var models []model.QuoteRequestModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quote requests")
	}

	quotes := make([]*entity.QuoteRequest, 0, len(models))
	for i := range models {
		quotes = append(quotes, &entity.QuoteRequest{
			ID:         models[i].ID,
			UserID:     models[i].UserID,
			MedicineID: models[i].MedicineID,
			Quantity:   models[i].Quantity,
			Message:    models[i].Message,
			CreatedAt:  models[i].CreatedAt,
		})
	}

	return quotes, nil
}
