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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for shopping cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for a cart upsert
type AddToCartRequest struct {
	UserID     uuid.UUID `json:"userId" validate:"required"`
	MedicineID uuid.UUID `json:"medicineId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,min=1"`
}

// RemoveFromCartRequest represents the request body for a cart line removal
type RemoveFromCartRequest struct {
	UserID     uuid.UUID `json:"userId" validate:"required"`
	MedicineID uuid.UUID `json:"medicineId" validate:"required"`
}

// CartEntryResponse is one cart line returned to clients
type CartEntryResponse struct {
	ID         uuid.UUID         `json:"id"`
	MedicineID uuid.UUID         `json:"medicineId"`
	Quantity   int               `json:"quantity"`
	Medicine   *MedicineResponse `json:"medicine,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func toCartEntryResponse(entry *entity.CartEntry) CartEntryResponse {
	resp := CartEntryResponse{
		ID:         entry.ID,
		MedicineID: entry.MedicineID,
		Quantity:   entry.Quantity,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
	if entry.Medicine != nil {
		medicine := toMedicineResponse(entry.Medicine)
		resp.Medicine = &medicine
	}

	return resp
}

// AddToCart handles a cart upsert. Re-adding the same medicine replaces the quantity.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.cartUC.AddToCart(c.Request().Context(), &usecase.AddToCartInput{
		UserID:     req.UserID,
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartEntryResponse(entry), "Cart updated successfully")
}

// RemoveFromCart handles a cart line removal. Removing an absent line succeeds.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	var req RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), &usecase.RemoveFromCartInput{
		UserID:     req.UserID,
		MedicineID: req.MedicineID,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item removed from cart"}, "Item removed from cart")
}

// GetCart handles retrieving a user's cart with medicine details
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	entries, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart := make([]CartEntryResponse, 0, len(entries))
	for _, entry := range entries {
		cart = append(cart, toCartEntryResponse(entry))
	}

	return response.Success(c, http.StatusOK, map[string]any{"items": cart}, "Cart retrieved successfully")
}
