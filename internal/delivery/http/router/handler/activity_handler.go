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

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler holds dependencies for activity-log and quote-request handlers
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// LogActivityRequest represents the request body for one activity log entry
type LogActivityRequest struct {
	UserID     uuid.UUID `json:"userId" validate:"required"`
	Type       string    `json:"type" validate:"required"`
	MedicineID uuid.UUID `json:"medicineId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"omitempty,min=1"`
}

// QuoteRequestRequest represents the request body for a bulk-quote request
type QuoteRequestRequest struct {
	UserID     uuid.UUID `json:"userId" validate:"required"`
	MedicineID uuid.UUID `json:"medicineId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,min=1"`
	Message    string    `json:"message"`
}

// ActivityResponse is one activity log entry returned to clients
type ActivityResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Type       string    `json:"type"`
	MedicineID uuid.UUID `json:"medicineId"`
	Quantity   int       `json:"quantity,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toActivityResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:         activity.ID,
		UserID:     activity.UserID,
		Type:       activity.Type.String(),
		MedicineID: activity.MedicineID,
		Quantity:   activity.Quantity,
		CreatedAt:  activity.CreatedAt,
	}
}

// QuoteRequestResponse is one quote request returned to clients
type QuoteRequestResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	MedicineID uuid.UUID `json:"medicineId"`
	Quantity   int       `json:"quantity"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toQuoteRequestResponse(quote *entity.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:         quote.ID,
		UserID:     quote.UserID,
		MedicineID: quote.MedicineID,
		Quantity:   quote.Quantity,
		Message:    quote.Message,
		CreatedAt:  quote.CreatedAt,
	}
}

// LogActivity handles appending one entry to the user-activity log
func (h *ActivityHandler) LogActivity(c echo.Context) error {
	var req LogActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	activity, err := h.activityUC.LogActivity(c.Request().Context(), &usecase.LogActivityInput{
		UserID:     req.UserID,
		Type:       req.Type,
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toActivityResponse(activity), "Activity logged successfully")
}

// ListActivities handles retrieving a user's activity log, optionally filtered by type
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	activities, err := h.activityUC.ListActivities(c.Request().Context(), userID, c.QueryParam("type"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		result = append(result, toActivityResponse(activity))
	}

	return response.Success(c, http.StatusOK, map[string]any{"activities": result}, "Activities retrieved successfully")
}

// CreateQuoteRequest handles filing a bulk-quote request
func (h *ActivityHandler) CreateQuoteRequest(c echo.Context) error {
	var req QuoteRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.activityUC.CreateQuoteRequest(c.Request().Context(), &usecase.QuoteRequestInput{
		UserID:     req.UserID,
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
		Message:    req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toQuoteRequestResponse(quote), "Quote request created successfully")
}

// ListQuoteRequests handles retrieving a user's quote requests, newest first
func (h *ActivityHandler) ListQuoteRequests(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	quotes, err := h.activityUC.ListQuoteRequests(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]QuoteRequestResponse, 0, len(quotes))
	for _, quote := range quotes {
		result = append(result, toQuoteRequestResponse(quote))
	}

	return response.Success(c, http.StatusOK, map[string]any{"quoteRequests": result}, "Quote requests retrieved successfully")
}
