package impl

import (
	"context"
	"testing"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	mockRepo "medisupply/internal/mocks/repository"
	mockSvc "medisupply/internal/mocks/service"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	qrService *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		QRService: qrService,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		qrService: qrService,
		publisher: publisher,
	}
}

func TestOrderService_ListOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), OrderStatus: entity.OrderStatusProcessing},
		{ID: uuid.New(), OrderStatus: entity.OrderStatusShipped},
	}

	fx.orderRepo.EXPECT().List(ctx).Return(orders, nil)

	result, err := fx.service.ListOrders(ctx)

	require.NoError(t, err)
	assert.Equal(t, orders, result)
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusProcessing}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(expected, nil)

	order, err := fx.service.GetOrder(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, orderID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetOrderQR_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID}
	pngBytes := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.qrService.EXPECT().GenerateOrderQR(orderID).Return(pngBytes, nil)

	png, err := fx.service.GetOrderQR(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestOrderService_GetOrderQR_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	// The QR generator is never reached for an unknown order.
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	png, err := fx.service.GetOrderQR(ctx, orderID)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_UpdateOrderStatus_ProcessingToShipped(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusProcessing, PaymentStatus: entity.PaymentStatusSucceeded}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusShipped).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, "shipped")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.OrderStatus)
}

func TestOrderService_UpdateOrderStatus_ShippedToDelivered(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusShipped, PaymentStatus: entity.PaymentStatusSucceeded}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusDelivered).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, "delivered")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.OrderStatus)
}

func TestOrderService_UpdateOrderStatus_RejectsBackwardMove(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusDelivered}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, "shipped")

	assert.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "delivered")
}

func TestOrderService_UpdateOrderStatus_RejectsCancelAfterShipping(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusShipped}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, "cancelled")

	assert.Error(t, err)
	assert.Nil(t, updated)
}

func TestOrderService_UpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	updated, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), "teleported")

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestOrderService_UpdatePaymentStatus_SucceededToRefunded(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusProcessing, PaymentStatus: entity.PaymentStatusSucceeded}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdatePaymentStatus(ctx, orderID, entity.PaymentStatusRefunded).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(nil)

	updated, err := fx.service.UpdatePaymentStatus(ctx, orderID, "refunded")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, updated.PaymentStatus)
}

func TestOrderService_UpdatePaymentStatus_RejectsRefundedToSucceeded(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, PaymentStatus: entity.PaymentStatusRefunded}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	updated, err := fx.service.UpdatePaymentStatus(ctx, orderID, "succeeded")

	assert.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_PAYMENT_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_UpdatePaymentStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	updated, err := fx.service.UpdatePaymentStatus(ctx, uuid.New(), "voided")

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentStatusTransition))
}

func TestOrderService_UpdateOrderStatus_PublishFailureDoesNotBlock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, OrderStatus: entity.OrderStatusProcessing, PaymentStatus: entity.PaymentStatusSucceeded}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusCancelled).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.AnythingOfType("*service.Event")).Return(errors.New("broker unavailable"))

	updated, err := fx.service.UpdateOrderStatus(ctx, orderID, "cancelled")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.OrderStatus)
}
