package impl

import (
	"context"
	"testing"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	mockRepo "medisupply/internal/mocks/repository"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	medicineRepo *mockRepo.MockMedicineRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	medicineRepo := mockRepo.NewMockMedicineRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		MedicineRepo: medicineRepo,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		medicineRepo: medicineRepo,
	}
}

func TestCatalogService_ListMedicines_Unpaginated(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	medicines := []*entity.Medicine{
		{ID: uuid.New(), Name: "Amoxicillin 500mg", PriceMinor: 1250},
		{ID: uuid.New(), Name: "Ibuprofen 400mg", PriceMinor: 680},
	}

	fx.medicineRepo.EXPECT().
		List(ctx, repository.ListMedicinesParams{}).
		Return(medicines, int64(2), nil)

	output, err := fx.service.ListMedicines(ctx, &usecase.ListMedicinesInput{})

	require.NoError(t, err)
	assert.Len(t, output.Medicines, 2)
	assert.Nil(t, output.Pagination)
}

func TestCatalogService_ListMedicines_Paginated(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	medicines := []*entity.Medicine{
		{ID: uuid.New(), Name: "Amoxicillin 500mg", PriceMinor: 1250},
	}

	fx.medicineRepo.EXPECT().
		List(ctx, repository.ListMedicinesParams{Page: 2, Limit: 10, Category: "Antibiotics"}).
		Return(medicines, int64(25), nil)

	output, err := fx.service.ListMedicines(ctx, &usecase.ListMedicinesInput{
		Page:     2,
		Limit:    10,
		Category: "Antibiotics",
	})

	require.NoError(t, err)
	require.NotNil(t, output.Pagination)
	assert.Equal(t, 2, output.Pagination.CurrentPage)
	assert.Equal(t, 3, output.Pagination.TotalPages)
	assert.Equal(t, int64(25), output.Pagination.TotalItems)
	assert.Equal(t, 10, output.Pagination.ItemsPerPage)
}

func TestCatalogService_ListMedicines_DefaultsPageToOne(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.medicineRepo.EXPECT().
		List(ctx, repository.ListMedicinesParams{Page: 1, Limit: 5}).
		Return([]*entity.Medicine{}, int64(0), nil)

	output, err := fx.service.ListMedicines(ctx, &usecase.ListMedicinesInput{Limit: 5})

	require.NoError(t, err)
	require.NotNil(t, output.Pagination)
	assert.Equal(t, 1, output.Pagination.CurrentPage)
}

func TestCatalogService_GetMedicine_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	medicineID := uuid.New()
	expected := &entity.Medicine{ID: medicineID, Name: "Amoxicillin 500mg"}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(expected, nil)

	medicine, err := fx.service.GetMedicine(ctx, medicineID)

	require.NoError(t, err)
	assert.Equal(t, expected, medicine)
}

func TestCatalogService_GetMedicine_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	medicineID := uuid.New()

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(nil, repository.ErrMedicineNotFound)

	medicine, err := fx.service.GetMedicine(ctx, medicineID)

	assert.Error(t, err)
	assert.Nil(t, medicine)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []string{"Analgesics", "Antibiotics"}

	fx.medicineRepo.EXPECT().Categories(ctx).Return(expected, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCatalogService_ImportMedicines_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ImportMedicinesInput{
		Medicines: []usecase.MedicineInput{
			{Name: "Amoxicillin 500mg", PriceMinor: 1250, Category: "Antibiotics", StockLabel: "Low Stock"},
			{Name: "Ibuprofen 400mg", PriceMinor: 680, Category: "Analgesics"},
		},
	}

	fx.medicineRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.Medicine")).
		Run(func(ctx context.Context, medicines []*entity.Medicine) {
			require.Len(t, medicines, 2)
			assert.Equal(t, entity.StockLabelLowStock, medicines[0].StockLabel)
			// Omitted labels default to in stock, and imports land active.
			assert.Equal(t, entity.StockLabelInStock, medicines[1].StockLabel)
			assert.True(t, medicines[0].Active)
		}).
		Return(nil)

	count, err := fx.service.ImportMedicines(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCatalogService_ImportMedicines_RejectsMissingName(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ImportMedicinesInput{
		Medicines: []usecase.MedicineInput{{PriceMinor: 1250}},
	}

	count, err := fx.service.ImportMedicines(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_ImportMedicines_RejectsInconsistentOrderBounds(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ImportMedicinesInput{
		Medicines: []usecase.MedicineInput{
			{Name: "Amoxicillin 500mg", PriceMinor: 1250, MinimumOrder: 10, MaxOrder: 5},
		},
	}

	count, err := fx.service.ImportMedicines(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_ImportMedicines_RejectsUnknownStockLabel(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ImportMedicinesInput{
		Medicines: []usecase.MedicineInput{
			{Name: "Amoxicillin 500mg", PriceMinor: 1250, StockLabel: "Plenty"},
		},
	}

	count, err := fx.service.ImportMedicines(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStockLabel))
}

func TestCatalogService_ImportMedicines_RejectsEmptyBatch(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	count, err := fx.service.ImportMedicines(ctx, &usecase.ImportMedicinesInput{})

	assert.Error(t, err)
	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_SetStockLabel_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	medicineID := uuid.New()

	fx.medicineRepo.EXPECT().
		UpdateStockLabel(ctx, medicineID, entity.StockLabelOutOfStock).
		Return(nil)

	err := fx.service.SetStockLabel(ctx, medicineID, "Out of Stock")

	require.NoError(t, err)
}

func TestCatalogService_SetStockLabel_RejectsUnknownLabel(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	err := fx.service.SetStockLabel(ctx, uuid.New(), "Plenty")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStockLabel))
}

func TestCatalogService_SetStockLabel_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	medicineID := uuid.New()

	fx.medicineRepo.EXPECT().
		UpdateStockLabel(ctx, medicineID, entity.StockLabelInStock).
		Return(repository.ErrMedicineNotFound)

	err := fx.service.SetStockLabel(ctx, medicineID, "In Stock")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}
