package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"medisupply/config"
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

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	gateway      service.PaymentGateway
	orderRepo    repository.OrderRepository
	medicineRepo repository.MedicineRepository
	publisher    service.EventPublisher
	currency     string
	logger       *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway      service.PaymentGateway
	OrderRepo    repository.OrderRepository
	MedicineRepo repository.MedicineRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := "usd"
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &paymentService{
		gateway:      params.Gateway,
		orderRepo:    params.OrderRepo,
		medicineRepo: params.MedicineRepo,
		publisher:    params.Publisher,
		currency:     currency,
		logger:       params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessPayment runs the full checkout: validate, tokenize the card, charge
// through the gateway, then persist the order. The order is written only after
// the gateway reported success; a failed write after a successful charge is
// reported as a degraded success with OrderSaved=false, never as a failure.
func (srv *paymentService) ProcessPayment(ctx context.Context, input *usecase.ProcessPaymentInput) (*usecase.ProcessPaymentOutput, error) {
	if err := validatePaymentInput(input); err != nil {
		return nil, err
	}

	expMonth, expYear, err := parseCardExpiry(input.Card.Expiry)
	if err != nil {
		return nil, err
	}

	// Snapshot item names and prices from the catalog before any money moves.
	items, totalMinor, err := srv.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = srv.currency
	}

	paymentMethodID, err := srv.gateway.CreatePaymentMethod(ctx, service.CardDetails{
		Number:   input.Card.Number,
		ExpMonth: expMonth,
		ExpYear:  expYear,
		CVC:      input.Card.CVC,
	})
	if err != nil {
		srv.log(ctx).Warn("Payment method creation failed", slog.String("customerEmail", input.Customer.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create payment method")
	}

	result, err := srv.gateway.CreateAndConfirmIntent(ctx, service.ChargeRequest{
		AmountMinor:     input.AmountMinor,
		Currency:        currency,
		PaymentMethodID: paymentMethodID,
		Description:     "MediSupply order",
		Metadata:        buildChargeMetadata(input, items),
	})
	if err != nil {
		srv.log(ctx).Warn("Charge failed", slog.String("customerEmail", input.Customer.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to confirm payment intent")
	}

	srv.log(ctx).Info("Charge succeeded",
		slog.String("paymentIntentID", result.IntentID),
		slog.Int64("amountMinor", input.AmountMinor),
	)

	order := &entity.Order{
		PaymentIntentID: result.IntentID,
		CustomerName:    input.Customer.Name,
		CustomerEmail:   input.Customer.Email,
		ShippingAddress: entity.ParseAddress(input.ShippingAddress),
		Items:           items,
		TotalMinor:      totalMinor,
		Currency:        currency,
		OrderStatus:     entity.OrderStatusProcessing,
		PaymentStatus:   entity.PaymentStatusSucceeded,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		// The charge already went through. Surface a degraded success so the
		// customer is not charged twice on retry.
		srv.log(ctx).Error("Charge succeeded but order persistence failed",
			slog.String("paymentIntentID", result.IntentID),
			slog.Any("error", err),
		)

		return &usecase.ProcessPaymentOutput{
			PaymentIntentID: result.IntentID,
			OrderSaved:      false,
		}, nil
	}

	srv.publishOrderEvent(ctx, service.EventTypeOrderCreated, order)

	return &usecase.ProcessPaymentOutput{
		OrderID:         order.ID,
		PaymentIntentID: result.IntentID,
		OrderSaved:      true,
	}, nil
}

// GetPaymentStatus reads the charge state straight from the gateway.
func (srv *paymentService) GetPaymentStatus(ctx context.Context, intentID string) (string, error) {
	if intentID == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "payment intent id is required")
	}

	result, err := srv.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		srv.log(ctx).Warn("Failed to retrieve payment intent", slog.String("paymentIntentID", intentID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to retrieve payment intent")
	}

	return result.Status, nil
}

// Refund issues a refund at the gateway. The local order record is reconciled
// separately through the order payment-status operation.
func (srv *paymentService) Refund(ctx context.Context, input *usecase.RefundInput) (*usecase.RefundOutput, error) {
	if input.IntentID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment intent id is required")
	}

	result, err := srv.gateway.CreateRefund(ctx, service.RefundRequest{
		IntentID:    input.IntentID,
		AmountMinor: input.AmountMinor,
		Reason:      input.Reason,
	})
	if err != nil {
		srv.log(ctx).Warn("Refund failed", slog.String("paymentIntentID", input.IntentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refund")
	}

	srv.log(ctx).Info("Refund created",
		slog.String("paymentIntentID", input.IntentID),
		slog.String("refundID", result.RefundID),
	)

	return &usecase.RefundOutput{RefundID: result.RefundID, Status: result.Status}, nil
}

// snapshotItems loads every purchased medicine and freezes its name and price
// into order items. The total is derived from these snapshots only.
func (srv *paymentService) snapshotItems(ctx context.Context, inputs []usecase.PaymentItemInput) ([]entity.OrderItem, int64, error) {
	items := make([]entity.OrderItem, 0, len(inputs))
	var totalMinor int64

	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, 0, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be at least 1")
		}

		medicine, err := srv.medicineRepo.FindByID(ctx, in.MedicineID)
		if err != nil {
			if errors.Is(err, repository.ErrMedicineNotFound) {
				return nil, 0, errors.Wrap(domainerrors.ErrMedicineNotFound, "payment rejected")
			}

			return nil, 0, errors.Wrap(err, "failed to load medicine for payment")
		}

		items = append(items, entity.OrderItem{
			MedicineID: medicine.ID,
			Name:       medicine.Name,
			PriceMinor: medicine.PriceMinor,
			Quantity:   in.Quantity,
		})
		totalMinor += medicine.PriceMinor * int64(in.Quantity)
	}

	return items, totalMinor, nil
}

func (srv *paymentService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.Event{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      eventType,
		SubjectID: order.ID.String(),
		Data: map[string]string{
			"payment_intent_id": order.PaymentIntentID,
			"total_minor":       strconv.FormatInt(order.TotalMinor, 10),
			"order_status":      order.OrderStatus.String(),
			"payment_status":    order.PaymentStatus.String(),
		},
	}

	// Best effort; event delivery must not affect the payment outcome.
	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.String("type", eventType), slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

func validatePaymentInput(input *usecase.ProcessPaymentInput) error {
	missing := make([]string, 0, 4)
	if input.Card.Number == "" {
		missing = append(missing, "cardNumber")
	}
	if input.Card.Expiry == "" {
		missing = append(missing, "expiry")
	}
	if input.Card.CVC == "" {
		missing = append(missing, "cvc")
	}
	if input.Customer.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Missing required fields: " + strings.Join(missing, ", "))
	}

	if input.AmountMinor <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "amount must be positive")
	}
	if len(input.Items) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "at least one item is required")
	}

	return nil
}

// parseCardExpiry parses the MM/YY form and rejects cards whose expiry month
// is strictly in the past. The check runs before any gateway call.
func parseCardExpiry(expiry string) (month, year int64, err error) {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return 0, 0, errors.Wrap(domainerrors.ErrValidationFailed, "card expiry must use the MM/YY format")
	}

	monthVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || monthVal < 1 || monthVal > 12 {
		return 0, 0, errors.Wrap(domainerrors.ErrValidationFailed, "card expiry month is invalid")
	}

	yearVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || yearVal < 0 || yearVal > 99 {
		return 0, 0, errors.Wrap(domainerrors.ErrValidationFailed, "card expiry year is invalid")
	}
	fullYear := 2000 + yearVal

	now := time.Now()
	if fullYear < now.Year() || (fullYear == now.Year() && monthVal < int(now.Month())) {
		return 0, 0, errors.Wrap(domainerrors.ErrCardExpired, "payment rejected")
	}

	return int64(monthVal), int64(fullYear), nil
}

func buildChargeMetadata(input *usecase.ProcessPaymentInput, items []entity.OrderItem) map[string]string {
	type metadataItem struct {
		MedicineID string `json:"medicineId"`
		Name       string `json:"name"`
		PriceMinor int64  `json:"priceMinor"`
		Quantity   int    `json:"quantity"`
	}

	serialized := make([]metadataItem, 0, len(items))
	for _, item := range items {
		serialized = append(serialized, metadataItem{
			MedicineID: item.MedicineID.String(),
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}
	itemsJSON, _ := json.Marshal(serialized)

	return map[string]string{
		"customer_name":    input.Customer.Name,
		"customer_email":   input.Customer.Email,
		"items":            string(itemsJSON),
		"shipping_address": input.ShippingAddress,
	}
}
