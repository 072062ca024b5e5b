package handler

import (
	"log/slog"
	"net/http"

	"medisupply/internal/delivery/http/response"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CardRequest carries the raw card fields from the checkout form
type CardRequest struct {
	Number string `json:"number" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
	CVC    string `json:"cvc" validate:"required"`
}

// PaymentItemRequest is one purchased line of a checkout request
type PaymentItemRequest struct {
	MedicineID uuid.UUID `json:"medicineId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,min=1"`
}

// CustomerRequest identifies the paying customer
type CustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ProcessPaymentRequest represents the request body for a checkout
type ProcessPaymentRequest struct {
	Card            CardRequest          `json:"card" validate:"required"`
	Amount          int64                `json:"amount" validate:"required,min=1"`
	Currency        string               `json:"currency"`
	Items           []PaymentItemRequest `json:"items" validate:"required,min=1,dive"`
	Customer        CustomerRequest      `json:"customer" validate:"required"`
	ShippingAddress string               `json:"shippingAddress" validate:"required"`
}

// RefundRequest represents the request body for a gateway refund.
// A zero amount refunds the full charge.
type RefundRequest struct {
	Amount int64  `json:"amount" validate:"omitempty,min=1"`
	Reason string `json:"reason"`
}

// ProcessPaymentResponse reports a completed charge. OrderSaved is false when
// the charge succeeded but the local order write failed.
type ProcessPaymentResponse struct {
	OrderID         uuid.UUID `json:"orderId,omitempty"`
	PaymentIntentID string    `json:"paymentIntentId"`
	OrderSaved      bool      `json:"orderSaved"`
}

// ProcessPayment handles a checkout request
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ProcessPaymentInput{
		Card: usecase.CardInput{
			Number: req.Card.Number,
			Expiry: req.Card.Expiry,
			CVC:    req.Card.CVC,
		},
		AmountMinor:     req.Amount,
		Currency:        req.Currency,
		Items:           make([]usecase.PaymentItemInput, 0, len(req.Items)),
		Customer:        usecase.CustomerInput(req.Customer),
		ShippingAddress: req.ShippingAddress,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.PaymentItemInput{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
		})
	}

	output, err := h.paymentUC.ProcessPayment(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ProcessPaymentResponse{
		OrderID:         output.OrderID,
		PaymentIntentID: output.PaymentIntentID,
		OrderSaved:      output.OrderSaved,
	}, "Payment processed successfully")
}

// GetPaymentStatus reads the charge state straight from the gateway
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	intentID := c.Param("id")
	if intentID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment intent ID")
	}

	status, err := h.paymentUC.GetPaymentStatus(c.Request().Context(), intentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": status}, "Payment status retrieved successfully")
}

// Refund issues a refund at the gateway
func (h *PaymentHandler) Refund(c echo.Context) error {
	intentID := c.Param("id")
	if intentID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment intent ID")
	}

	var req RefundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.paymentUC.Refund(c.Request().Context(), &usecase.RefundInput{
		IntentID:    intentID,
		AmountMinor: req.Amount,
		Reason:      req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"refundId": output.RefundID,
		"status":   output.Status,
	}, "Refund created successfully")
}
