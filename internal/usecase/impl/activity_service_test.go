package impl

import (
	"context"
	"testing"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	mockRepo "medisupply/internal/mocks/repository"
	mockSvc "medisupply/internal/mocks/service"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityServiceFixtures holds all test dependencies for activity service tests.
type activityServiceFixtures struct {
	service      usecase.ActivityUsecase
	activityRepo *mockRepo.MockActivityRepository
	quoteRepo    *mockRepo.MockQuoteRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	activityRepo := mockRepo.NewMockActivityRepository(t)
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewActivityService(ActivityServiceParams{
		ActivityRepo: activityRepo,
		QuoteRepo:    quoteRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return activityServiceFixtures{
		service:      service,
		activityRepo: activityRepo,
		quoteRepo:    quoteRepo,
		publisher:    publisher,
	}
}

func TestActivityService_LogActivity_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicineID := uuid.New()
	input := &usecase.LogActivityInput{
		UserID:     userID,
		Type:       "add_to_cart",
		MedicineID: medicineID,
		Quantity:   2,
	}

	fx.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(nil)

	activity, err := fx.service.LogActivity(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, activity.UserID)
	assert.Equal(t, entity.ActivityAddToCart, activity.Type)
	assert.Equal(t, 2, activity.Quantity)
}

func TestActivityService_LogActivity_RejectsUnknownType(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	input := &usecase.LogActivityInput{
		UserID:     uuid.New(),
		Type:       "teleport",
		MedicineID: uuid.New(),
	}

	activity, err := fx.service.LogActivity(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, activity)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestActivityService_LogActivity_PublishFailureDoesNotBlock(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	input := &usecase.LogActivityInput{
		UserID:     uuid.New(),
		Type:       "favorite",
		MedicineID: uuid.New(),
	}

	fx.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(errors.New("broker unavailable"))

	activity, err := fx.service.LogActivity(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ActivityFavorite, activity.Type)
}

func TestActivityService_ListActivities_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	userID := uuid.New()
	activities := []*entity.Activity{
		{ID: uuid.New(), UserID: userID, Type: entity.ActivityBuy},
	}

	fx.activityRepo.EXPECT().ListByUser(ctx, userID, entity.ActivityType("")).Return(activities, nil)

	result, err := fx.service.ListActivities(ctx, userID, "")

	require.NoError(t, err)
	assert.Equal(t, activities, result)
}

func TestActivityService_ListActivities_FilteredByType(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	userID := uuid.New()
	activities := []*entity.Activity{
		{ID: uuid.New(), UserID: userID, Type: entity.ActivityFavorite},
	}

	fx.activityRepo.EXPECT().ListByUser(ctx, userID, entity.ActivityFavorite).Return(activities, nil)

	result, err := fx.service.ListActivities(ctx, userID, "favorite")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestActivityService_ListActivities_RejectsUnknownFilter(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	result, err := fx.service.ListActivities(ctx, uuid.New(), "teleport")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestActivityService_CreateQuoteRequest_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	userID := uuid.New()
	medicineID := uuid.New()
	input := &usecase.QuoteRequestInput{
		UserID:     userID,
		MedicineID: medicineID,
		Quantity:   500,
		Message:    "Bulk order for Q4 restocking",
	}

	fx.quoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.QuoteRequest")).Return(nil)

	// The quote is mirrored into the activity log and fanned out.
	fx.activityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activity")).
		Run(func(ctx context.Context, activity *entity.Activity) {
			assert.Equal(t, entity.ActivityRequestQuote, activity.Type)
			assert.Equal(t, 500, activity.Quantity)
		}).
		Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(nil)

	quote, err := fx.service.CreateQuoteRequest(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, quote.UserID)
	assert.Equal(t, 500, quote.Quantity)
	assert.Equal(t, input.Message, quote.Message)
}

func TestActivityService_CreateQuoteRequest_RejectsZeroQuantity(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	input := &usecase.QuoteRequestInput{UserID: uuid.New(), MedicineID: uuid.New()}

	quote, err := fx.service.CreateQuoteRequest(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestActivityService_CreateQuoteRequest_MirrorFailureDoesNotBlock(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	input := &usecase.QuoteRequestInput{
		UserID:     uuid.New(),
		MedicineID: uuid.New(),
		Quantity:   100,
	}

	fx.quoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.QuoteRequest")).Return(nil)
	// A failed mirror is logged, not surfaced, and nothing is published.
	fx.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Activity")).Return(errors.New("db error"))

	quote, err := fx.service.CreateQuoteRequest(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 100, quote.Quantity)
}

func TestActivityService_ListQuoteRequests_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	userID := uuid.New()
	quotes := []*entity.QuoteRequest{
		{ID: uuid.New(), UserID: userID, Quantity: 500},
	}

	fx.quoteRepo.EXPECT().ListByUser(ctx, userID).Return(quotes, nil)

	result, err := fx.service.ListQuoteRequests(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, quotes, result)
}
