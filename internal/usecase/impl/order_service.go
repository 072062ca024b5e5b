package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "medisupply/internal/delivery/context"
	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/domain/service"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns all orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves one order with its item snapshots.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}

// GetOrderQR renders a tracking QR code for an existing order.
func (srv *orderService) GetOrderQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetOrder(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate order QR code", slog.Any("orderID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// UpdateOrderStatus moves an order along the fulfilment lifecycle. Transitions
// only run forward: processing to shipped or cancelled, shipped to delivered.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	next := entity.OrderStatus(status)
	if !next.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "unknown order status")
	}

	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.OrderStatus.CanTransitionTo(next) {
		srv.log(ctx).Warn("Rejected order status transition",
			slog.Any("orderID", id),
			slog.String("from", order.OrderStatus.String()),
			slog.String("to", next.String()),
		)

		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"Cannot transition from " + order.OrderStatus.String() + " to " + next.String())
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, id, next); err != nil {
		srv.log(ctx).Error("Failed to update order status", slog.Any("orderID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.OrderStatus = next
	srv.publishStatusEvent(ctx, order)

	return order, nil
}

// UpdatePaymentStatus reconciles the local payment record after a gateway-side
// refund. The only permitted move is succeeded to refunded.
func (srv *orderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	next := entity.PaymentStatus(status)
	if !next.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentStatusTransition, "unknown payment status")
	}

	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !(order.PaymentStatus == entity.PaymentStatusSucceeded && next == entity.PaymentStatusRefunded) {
		return nil, domainerrors.ErrInvalidPaymentStatusTransition.WithDetails(
			"Cannot transition from " + order.PaymentStatus.String() + " to " + next.String())
	}

	if err := srv.orderRepo.UpdatePaymentStatus(ctx, id, next); err != nil {
		srv.log(ctx).Error("Failed to update payment status", slog.Any("orderID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update payment status")
	}

	order.PaymentStatus = next
	srv.publishStatusEvent(ctx, order)

	return order, nil
}

func (srv *orderService) publishStatusEvent(ctx context.Context, order *entity.Order) {
	event := &service.Event{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      service.EventTypeOrderStatus,
		SubjectID: order.ID.String(),
		Data: map[string]string{
			"payment_intent_id": order.PaymentIntentID,
			"total_minor":       strconv.FormatInt(order.TotalMinor, 10),
			"order_status":      order.OrderStatus.String(),
			"payment_status":    order.PaymentStatus.String(),
		},
	}

	// Best effort; the status change is already committed.
	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order status event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}
