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

// medicineRepository implements the domain.MedicineRepository interface using GORM.
// Catalog reads only ever see active rows; deactivated medicines stay in the
// table so existing order snapshots keep a valid reference.
type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository is the constructor for medicineRepository.
func NewMedicineRepository(db *gorm.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

// FindByID retrieves a single active medicine by its unique ID.
func (repo *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	var medicineM model.MedicineModel
	if err := repo.db.WithContext(ctx).
		First(&medicineM, "id = ? AND active", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicineNotFound
		}

		return nil, errors.Wrap(err, "failed to find medicine by id")
	}

	return toMedicineDomain(&medicineM), nil
}

// List returns a page of active medicines plus the total count of matches.
// A zero limit returns the whole filtered catalog.
func (repo *medicineRepository) List(ctx context.Context, params repository.ListMedicinesParams) ([]*entity.Medicine, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.MedicineModel{}).Where("active")
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count medicines")
	}

	query = query.Order("name ASC")
	if params.Limit > 0 {
		page := params.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * params.Limit).Limit(params.Limit)
	}

	var models []model.MedicineModel
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list medicines")
	}

	medicines := make([]*entity.Medicine, 0, len(models))
	for i := range models {
		medicines = append(medicines, toMedicineDomain(&models[i]))
	}

	return medicines, total, nil
}

// Categories returns the distinct categories of active medicines.
func (repo *medicineRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("active AND category <> ''").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list medicine categories")
	}

	return categories, nil
}

// Create persists a new medicine to the database.
func (repo *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	medicineM := fromMedicineDomain(medicine)

	if err := repo.db.WithContext(ctx).Create(medicineM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create medicine")
	}

	medicine.ID = medicineM.ID
	medicine.CreatedAt = medicineM.CreatedAt
	medicine.UpdatedAt = medicineM.UpdatedAt

	return nil
}

// CreateBatch persists a set of medicines in one statement, used by bulk import.
func (repo *medicineRepository) CreateBatch(ctx context.Context, medicines []*entity.Medicine) error {
	models := make([]*model.MedicineModel, 0, len(medicines))
	for _, medicine := range medicines {
		models = append(models, fromMedicineDomain(medicine))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to import medicines")
	}

	for i, medicine := range medicines {
		medicine.ID = models[i].ID
		medicine.CreatedAt = models[i].CreatedAt
		medicine.UpdatedAt = models[i].UpdatedAt
	}

	return nil
}

// UpdateStockLabel sets the availability indicator on a medicine.
func (repo *medicineRepository) UpdateStockLabel(ctx context.Context, id uuid.UUID, label entity.StockLabel) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ?", id).
		Update("stock_label", label.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update medicine stock label")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMedicineNotFound
	}

	return nil
}

// toMedicineDomain converts a GORM MedicineModel to a domain Medicine entity.
func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	return &entity.Medicine{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		PriceMinor:        data.PriceMinor,
		Category:          data.Category,
		Manufacturer:      data.Manufacturer,
		ImageURL:          data.ImageURL,
		Dosage:            data.Dosage,
		ExpiryDate:        data.ExpiryDate,
		SideEffects:       data.SideEffects,
		Contraindications: data.Contraindications,
		MinimumOrder:      data.MinimumOrder,
		MaxOrder:          data.MaxOrder,
		DeliveryTime:      data.DeliveryTime,
		Certifications:    data.Certifications,
		Rating:            data.Rating,
		ReviewCount:       data.ReviewCount,
		StockLabel:        entity.StockLabel(data.StockLabel),
		Active:            data.Active,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromMedicineDomain converts a domain Medicine entity to a GORM MedicineModel for persistence.
func fromMedicineDomain(data *entity.Medicine) *model.MedicineModel {
	if data == nil {
		return nil
	}

	return &model.MedicineModel{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		PriceMinor:        data.PriceMinor,
		Category:          data.Category,
		Manufacturer:      data.Manufacturer,
		ImageURL:          data.ImageURL,
		Dosage:            data.Dosage,
		ExpiryDate:        data.ExpiryDate,
		SideEffects:       data.SideEffects,
		Contraindications: data.Contraindications,
		MinimumOrder:      data.MinimumOrder,
		MaxOrder:          data.MaxOrder,
		DeliveryTime:      data.DeliveryTime,
		Certifications:    data.Certifications,
		Rating:            data.Rating,
		ReviewCount:       data.ReviewCount,
		StockLabel:        data.StockLabel.String(),
		Active:            data.Active,
	}
}
