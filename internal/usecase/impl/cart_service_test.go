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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service      usecase.CartUsecase
	cartRepo     *mockRepo.MockCartRepository
	medicineRepo *mockRepo.MockMedicineRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:     cartRepo,
		MedicineRepo: medicineRepo,
		Logger:       newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:      service,
		cartRepo:     cartRepo,
		medicineRepo: medicineRepo,
	}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicineID := uuid.New()
	medicine := &entity.Medicine{ID: medicineID, Name: "Amoxicillin 500mg"}
	input := &usecase.AddToCartInput{UserID: userID, MedicineID: medicineID, Quantity: 3}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(medicine, nil)
	fx.cartRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.CartEntry")).Return(nil)

	entry, err := fx.service.AddToCart(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, medicineID, entry.MedicineID)
	assert.Equal(t, 3, entry.Quantity)
}

func TestCartService_AddToCart_RejectsZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.AddToCartInput{UserID: uuid.New(), MedicineID: uuid.New(), Quantity: 0}

	entry, err := fx.service.AddToCart(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_AddToCart_MedicineNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	medicineID := uuid.New()
	input := &usecase.AddToCartInput{UserID: uuid.New(), MedicineID: medicineID, Quantity: 1}

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(nil, repository.ErrMedicineNotFound)

	entry, err := fx.service.AddToCart(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicineID := uuid.New()

	fx.cartRepo.EXPECT().Remove(ctx, userID, medicineID).Return(nil)

	err := fx.service.RemoveFromCart(ctx, &usecase.RemoveFromCartInput{UserID: userID, MedicineID: medicineID})

	require.NoError(t, err)
}

func TestCartService_RemoveFromCart_Error(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicineID := uuid.New()

	fx.cartRepo.EXPECT().Remove(ctx, userID, medicineID).Return(errors.New("db error"))

	err := fx.service.RemoveFromCart(ctx, &usecase.RemoveFromCartInput{UserID: userID, MedicineID: medicineID})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove cart entry")
}

func TestCartService_GetCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.CartEntry{
		{ID: uuid.New(), UserID: userID, MedicineID: uuid.New(), Quantity: 2},
		{ID: uuid.New(), UserID: userID, MedicineID: uuid.New(), Quantity: 1},
	}

	fx.cartRepo.EXPECT().ListByUser(ctx, userID).Return(entries, nil)

	result, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entries, result)
}

func TestCartService_GetCart_Error(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ListByUser(ctx, userID).Return(nil, errors.New("db error"))

	result, err := fx.service.GetCart(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, result)
}
