package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medisupply/internal/delivery/http/response"
	"medisupply/internal/domain/entity"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest represents the request body for a fulfilment transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentStatusRequest represents the request body for a payment reconciliation
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// OrderItemResponse is one immutable line of an order
type OrderItemResponse struct {
	MedicineID uuid.UUID `json:"medicineId"`
	Name       string    `json:"name"`
	PriceMinor int64     `json:"priceMinor"`
	Quantity   int       `json:"quantity"`
}

// OrderResponse is the order view returned to clients
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	PaymentIntentID string              `json:"paymentIntentId"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	ShippingAddress string              `json:"shippingAddress"`
	Items           []OrderItemResponse `json:"items"`
	TotalMinor      int64               `json:"totalMinor"`
	Currency        string              `json:"currency"`
	OrderStatus     string              `json:"orderStatus"`
	PaymentStatus   string              `json:"paymentStatus"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func toOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			MedicineID: item.MedicineID,
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}

	return OrderResponse{
		ID:              order.ID,
		PaymentIntentID: order.PaymentIntentID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress.String(),
		Items:           items,
		TotalMinor:      order.TotalMinor,
		Currency:        order.Currency,
		OrderStatus:     order.OrderStatus.String(),
		PaymentStatus:   order.PaymentStatus.String(),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// ListOrders handles retrieving all orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": result}, "Orders retrieved successfully")
}

// GetOrder handles retrieving a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order retrieved successfully")
}

// GetOrderQR renders the tracking QR code of an order as a PNG image
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.GetOrderQR(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateOrderStatus handles a forward-only fulfilment transition
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order status updated successfully")
}

// UpdatePaymentStatus reconciles the local payment state after a gateway refund
func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdatePaymentStatus(c.Request().Context(), orderID, req.PaymentStatus)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Payment status updated successfully")
}
