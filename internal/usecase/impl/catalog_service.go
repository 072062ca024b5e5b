package impl

import (
	"context"
	"log/slog"

	deliverycontext "medisupply/internal/delivery/context"
	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMedicines returns active catalog items, paginated when a limit is given.
func (srv *catalogService) ListMedicines(ctx context.Context, input *usecase.ListMedicinesInput) (*usecase.ListMedicinesOutput, error) {
	params := repository.ListMedicinesParams{
		Page:     input.Page,
		Limit:    input.Limit,
		Category: input.Category,
	}
	if params.Limit > 0 && params.Page < 1 {
		params.Page = 1
	}

	medicines, total, err := srv.medicineRepo.List(ctx, params)
	if err != nil {
		srv.log(ctx).Error("Failed to list medicines", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list medicines")
	}

	output := &usecase.ListMedicinesOutput{Medicines: medicines}
	if params.Limit > 0 {
		totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
		output.Pagination = &usecase.Pagination{
			CurrentPage:  params.Page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: params.Limit,
		}
	}

	return output, nil
}

// GetMedicine retrieves a single active catalog item.
func (srv *catalogService) GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := srv.medicineRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMedicineNotFound, "medicine lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find medicine by id")
	}

	return medicine, nil
}

// ListCategories returns the distinct categories of the active catalog.
func (srv *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.medicineRepo.Categories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ImportMedicines bulk-creates catalog items and returns the created count.
func (srv *catalogService) ImportMedicines(ctx context.Context, input *usecase.ImportMedicinesInput) (int, error) {
	if len(input.Medicines) == 0 {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "import requires at least one medicine")
	}

	medicines := make([]*entity.Medicine, 0, len(input.Medicines))
	for _, m := range input.Medicines {
		if m.Name == "" || m.PriceMinor <= 0 {
			return 0, errors.Wrap(domainerrors.ErrValidationFailed, "medicine name and a positive price are required")
		}

		label := entity.StockLabel(m.StockLabel)
		if m.StockLabel == "" {
			label = entity.StockLabelInStock
		}
		if !label.IsValid() {
			return 0, errors.Wrap(domainerrors.ErrInvalidStockLabel, "import rejected")
		}

		if m.MinimumOrder < 0 || m.MaxOrder < 0 || (m.MaxOrder > 0 && m.MaxOrder < m.MinimumOrder) {
			return 0, errors.Wrap(domainerrors.ErrValidationFailed, "order quantity bounds are inconsistent")
		}

		medicines = append(medicines, &entity.Medicine{
			Name:              m.Name,
			Description:       m.Description,
			PriceMinor:        m.PriceMinor,
			Category:          m.Category,
			Manufacturer:      m.Manufacturer,
			ImageURL:          m.ImageURL,
			Dosage:            m.Dosage,
			ExpiryDate:        m.ExpiryDate,
			SideEffects:       m.SideEffects,
			Contraindications: m.Contraindications,
			MinimumOrder:      m.MinimumOrder,
			MaxOrder:          m.MaxOrder,
			DeliveryTime:      m.DeliveryTime,
			Certifications:    m.Certifications,
			StockLabel:        label,
			Active:            true,
		})
	}

	if err := srv.medicineRepo.CreateBatch(ctx, medicines); err != nil {
		srv.log(ctx).Error("Failed to import medicines", slog.Int("count", len(medicines)), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to import medicines")
	}

	srv.log(ctx).Info("Imported medicines", slog.Int("count", len(medicines)))

	return len(medicines), nil
}

// SetStockLabel updates the availability indicator of a medicine.
func (srv *catalogService) SetStockLabel(ctx context.Context, id uuid.UUID, label string) error {
	stockLabel := entity.StockLabel(label)
	if !stockLabel.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidStockLabel, "stock label update rejected")
	}

	if err := srv.medicineRepo.UpdateStockLabel(ctx, id, stockLabel); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return errors.Wrap(domainerrors.ErrMedicineNotFound, "stock label update failed")
		}
		srv.log(ctx).Error("Failed to update stock label", slog.Any("medicineID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update stock label")
	}

	return nil
}
