package impl

import (
	"context"
	"testing"

	"medisupply/config"
	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	domainservice "medisupply/internal/domain/service"
	mockRepo "medisupply/internal/mocks/repository"
	mockSvc "medisupply/internal/mocks/service"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service      usecase.PaymentUsecase
	gateway      *mockSvc.MockPaymentGateway
	orderRepo    *mockRepo.MockOrderRepository
	medicineRepo *mockRepo.MockMedicineRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	gateway := mockSvc.NewMockPaymentGateway(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	medicineRepo := mockRepo.NewMockMedicineRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	cfg := &config.Config{
		Payment: &config.PaymentConfig{Currency: "usd"},
	}

	service := NewPaymentService(PaymentServiceParams{
		Gateway:      gateway,
		OrderRepo:    orderRepo,
		MedicineRepo: medicineRepo,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:      service,
		gateway:      gateway,
		orderRepo:    orderRepo,
		medicineRepo: medicineRepo,
		publisher:    publisher,
	}
}

func validPaymentInput(medicineID uuid.UUID) *usecase.ProcessPaymentInput {
	return &usecase.ProcessPaymentInput{
		Card:        usecase.CardInput{Number: "4242424242424242", Expiry: "12/99", CVC: "123"},
		AmountMinor: 3180,
		Items: []usecase.PaymentItemInput{
			{MedicineID: medicineID, Quantity: 2},
		},
		Customer:        usecase.CustomerInput{Name: "Alice Buyer", Email: "alice@example.com"},
		ShippingAddress: "12 Main St, Springfield, IL, 62701",
	}
}

func TestPaymentService_ProcessPayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	medicineID := uuid.New()
	orderID := uuid.New()
	medicine := &entity.Medicine{ID: medicineID, Name: "Amoxicillin 500mg", PriceMinor: 1250}
	input := validPaymentInput(medicineID)

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(medicine, nil)

	fx.gateway.EXPECT().
		CreatePaymentMethod(ctx, mock.AnythingOfType("service.CardDetails")).
		Run(func(ctx context.Context, card domainservice.CardDetails) {
			assert.Equal(t, input.Card.Number, card.Number)
			assert.Equal(t, int64(12), card.ExpMonth)
			assert.Equal(t, int64(2099), card.ExpYear)
		}).
		Return("pm_123", nil)

	fx.gateway.EXPECT().
		CreateAndConfirmIntent(ctx, mock.AnythingOfType("service.ChargeRequest")).
		Run(func(ctx context.Context, req domainservice.ChargeRequest) {
			assert.Equal(t, int64(3180), req.AmountMinor)
			assert.Equal(t, "usd", req.Currency)
			assert.Equal(t, "pm_123", req.PaymentMethodID)
			assert.Equal(t, input.Customer.Email, req.Metadata["customer_email"])
		}).
		Return(&domainservice.ChargeResult{IntentID: "pi_123", Status: "succeeded"}, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			// Prices come from the catalog snapshot, not from the client.
			require.Len(t, order.Items, 1)
			assert.Equal(t, medicine.Name, order.Items[0].Name)
			assert.Equal(t, medicine.PriceMinor, order.Items[0].PriceMinor)
			assert.Equal(t, int64(2500), order.TotalMinor)
			assert.Equal(t, entity.OrderStatusProcessing, order.OrderStatus)
			assert.Equal(t, entity.PaymentStatusSucceeded, order.PaymentStatus)
			order.ID = orderID
		}).
		Return(nil)

	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(nil)

	output, err := fx.service.ProcessPayment(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, orderID, output.OrderID)
	assert.Equal(t, "pi_123", output.PaymentIntentID)
	assert.True(t, output.OrderSaved)
}

func TestPaymentService_ProcessPayment_OrderSaveFailureIsDegradedSuccess(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	medicineID := uuid.New()
	medicine := &entity.Medicine{ID: medicineID, Name: "Amoxicillin 500mg", PriceMinor: 1250}
	input := validPaymentInput(medicineID)

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(medicine, nil)
	fx.gateway.EXPECT().CreatePaymentMethod(ctx, mock.AnythingOfType("service.CardDetails")).Return("pm_123", nil)
	fx.gateway.EXPECT().
		CreateAndConfirmIntent(ctx, mock.AnythingOfType("service.ChargeRequest")).
		Return(&domainservice.ChargeResult{IntentID: "pi_123", Status: "succeeded"}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(errors.New("db error"))

	// No PublishEvent expectation: nothing is announced for an unsaved order.
	output, err := fx.service.ProcessPayment(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, output.OrderID)
	assert.Equal(t, "pi_123", output.PaymentIntentID)
	assert.False(t, output.OrderSaved)
}

func TestPaymentService_ProcessPayment_MissingFields(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.ProcessPaymentInput{
		Card:        usecase.CardInput{Expiry: "12/99"},
		AmountMinor: 1000,
		Items:       []usecase.PaymentItemInput{{MedicineID: uuid.New(), Quantity: 1}},
	}

	output, err := fx.service.ProcessPayment(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "cardNumber")
	assert.Contains(t, appErr.Details(), "cvc")
	assert.Contains(t, appErr.Details(), "email")
}

func TestPaymentService_ProcessPayment_ExpiredCard(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := validPaymentInput(uuid.New())
	input.Card.Expiry = "01/20"

	output, err := fx.service.ProcessPayment(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCardExpired))
}

func TestPaymentService_ProcessPayment_MalformedExpiry(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := validPaymentInput(uuid.New())
	input.Card.Expiry = "1299"

	output, err := fx.service.ProcessPayment(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_ProcessPayment_UnknownMedicine(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	medicineID := uuid.New()
	input := validPaymentInput(medicineID)

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(nil, repository.ErrMedicineNotFound)

	output, err := fx.service.ProcessPayment(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicineNotFound))
}

func TestPaymentService_ProcessPayment_CardDeclined(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	medicineID := uuid.New()
	medicine := &entity.Medicine{ID: medicineID, Name: "Amoxicillin 500mg", PriceMinor: 1250}
	input := validPaymentInput(medicineID)

	fx.medicineRepo.EXPECT().FindByID(ctx, medicineID).Return(medicine, nil)
	fx.gateway.EXPECT().CreatePaymentMethod(ctx, mock.AnythingOfType("service.CardDetails")).Return("pm_123", nil)
	fx.gateway.EXPECT().
		CreateAndConfirmIntent(ctx, mock.AnythingOfType("service.ChargeRequest")).
		Return(nil, errors.Wrap(domainerrors.ErrCardDeclined, "charge failed"))

	output, err := fx.service.ProcessPayment(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCardDeclined))
}

func TestPaymentService_GetPaymentStatus_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.gateway.EXPECT().
		RetrieveIntent(ctx, "pi_123").
		Return(&domainservice.ChargeResult{IntentID: "pi_123", Status: "succeeded"}, nil)

	status, err := fx.service.GetPaymentStatus(ctx, "pi_123")

	require.NoError(t, err)
	assert.Equal(t, "succeeded", status)
}

func TestPaymentService_GetPaymentStatus_MissingIntentID(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	status, err := fx.service.GetPaymentStatus(ctx, "")

	assert.Error(t, err)
	assert.Empty(t, status)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_Refund_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	input := &usecase.RefundInput{IntentID: "pi_123", AmountMinor: 1000, Reason: "requested_by_customer"}

	fx.gateway.EXPECT().
		CreateRefund(ctx, domainservice.RefundRequest{IntentID: "pi_123", AmountMinor: 1000, Reason: "requested_by_customer"}).
		Return(&domainservice.RefundResult{RefundID: "re_123", Status: "succeeded"}, nil)

	output, err := fx.service.Refund(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "re_123", output.RefundID)
	assert.Equal(t, "succeeded", output.Status)
}

func TestPaymentService_Refund_MissingIntentID(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	output, err := fx.service.Refund(ctx, &usecase.RefundInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
