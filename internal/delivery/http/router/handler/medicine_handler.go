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

// MedicineHandlerParams holds dependencies for MedicineHandler, injected by Fx.
type MedicineHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// MedicineHandler holds dependencies for catalog handlers
type MedicineHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewMedicineHandler is the constructor for MedicineHandler
func NewMedicineHandler(params MedicineHandlerParams) *MedicineHandler {
	return &MedicineHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListMedicinesRequest represents the request body for catalog listing.
// Omitting page and limit returns the whole active catalog.
type ListMedicinesRequest struct {
	Page     int    `json:"page" validate:"omitempty,min=1"`
	Limit    int    `json:"limit" validate:"omitempty,min=1"`
	Category string `json:"category"`
}

// ImportMedicineItem is one item of a bulk catalog import
type ImportMedicineItem struct {
	Name              string     `json:"name" validate:"required"`
	Description       string     `json:"description"`
	PriceMinor        int64      `json:"priceMinor" validate:"required,min=1"`
	Category          string     `json:"category"`
	Manufacturer      string     `json:"manufacturer"`
	ImageURL          string     `json:"imageUrl"`
	Dosage            string     `json:"dosage"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	SideEffects       []string   `json:"sideEffects"`
	Contraindications []string   `json:"contraindications"`
	MinimumOrder      int        `json:"minimumOrder" validate:"omitempty,min=0"`
	MaxOrder          int        `json:"maxOrder" validate:"omitempty,min=0"`
	DeliveryTime      string     `json:"deliveryTime"`
	Certifications    []string   `json:"certifications"`
	StockLabel        string     `json:"stockLabel"`
}

// ImportMedicinesRequest represents the request body for a bulk catalog import
type ImportMedicinesRequest struct {
	Medicines []ImportMedicineItem `json:"medicines" validate:"required,min=1,dive"`
}

// UpdateStockRequest represents the request body for a stock label update
type UpdateStockRequest struct {
	StockLabel string `json:"stockLabel" validate:"required"`
}

// MedicineResponse is the catalog item view returned to clients
type MedicineResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	PriceMinor        int64      `json:"priceMinor"`
	Category          string     `json:"category"`
	Manufacturer      string     `json:"manufacturer"`
	ImageURL          string     `json:"imageUrl"`
	Dosage            string     `json:"dosage,omitempty"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`
	SideEffects       []string   `json:"sideEffects,omitempty"`
	Contraindications []string   `json:"contraindications,omitempty"`
	MinimumOrder      int        `json:"minimumOrder,omitempty"`
	MaxOrder          int        `json:"maxOrder,omitempty"`
	DeliveryTime      string     `json:"deliveryTime,omitempty"`
	Certifications    []string   `json:"certifications,omitempty"`
	Rating            float64    `json:"rating"`
	ReviewCount       int        `json:"reviewCount"`
	StockLabel        string     `json:"stockLabel"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func toMedicineResponse(m *entity.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		PriceMinor:        m.PriceMinor,
		Category:          m.Category,
		Manufacturer:      m.Manufacturer,
		ImageURL:          m.ImageURL,
		Dosage:            m.Dosage,
		ExpiryDate:        m.ExpiryDate,
		SideEffects:       m.SideEffects,
		Contraindications: m.Contraindications,
		MinimumOrder:      m.MinimumOrder,
		MaxOrder:          m.MaxOrder,
		DeliveryTime:      m.DeliveryTime,
		Certifications:    m.Certifications,
		Rating:            m.Rating,
		ReviewCount:       m.ReviewCount,
		StockLabel:        m.StockLabel.String(),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ListMedicinesResponse is the catalog page returned to clients.
// Pagination is omitted when the listing was unpaginated.
type ListMedicinesResponse struct {
	Medicines  []MedicineResponse  `json:"medicines"`
	Pagination *usecase.Pagination `json:"pagination,omitempty"`
}

// ListMedicines handles catalog listing with optional pagination and category filter
func (h *MedicineHandler) ListMedicines(c echo.Context) error {
	var req ListMedicinesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.catalogUC.ListMedicines(c.Request().Context(), &usecase.ListMedicinesInput{
		Page:     req.Page,
		Limit:    req.Limit,
		Category: req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	medicines := make([]MedicineResponse, 0, len(output.Medicines))
	for _, m := range output.Medicines {
		medicines = append(medicines, toMedicineResponse(m))
	}

	return response.Success(c, http.StatusOK, ListMedicinesResponse{
		Medicines:  medicines,
		Pagination: output.Pagination,
	}, "Medicines retrieved successfully")
}

// GetMedicine handles retrieving a single catalog item
func (h *MedicineHandler) GetMedicine(c echo.Context) error {
	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medicine ID")
	}

	medicine, err := h.catalogUC.GetMedicine(c.Request().Context(), medicineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMedicineResponse(medicine), "Medicine retrieved successfully")
}

// ListCategories handles retrieving the distinct catalog categories
func (h *MedicineHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"categories": categories}, "Categories retrieved successfully")
}

// ImportMedicines handles a bulk catalog import
func (h *MedicineHandler) ImportMedicines(c echo.Context) error {
	var req ImportMedicinesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ImportMedicinesInput{
		Medicines: make([]usecase.MedicineInput, 0, len(req.Medicines)),
	}
	for _, m := range req.Medicines {
		input.Medicines = append(input.Medicines, usecase.MedicineInput{
			Name:              m.Name,
			Description:       m.Description,
			PriceMinor:        m.PriceMinor,
			Category:          m.Category,
			Manufacturer:      m.Manufacturer,
			ImageURL:          m.ImageURL,
			Dosage:            m.Dosage,
			ExpiryDate:        m.ExpiryDate,
			SideEffects:       m.SideEffects,
			Contraindications: m.Contraindications,
			MinimumOrder:      m.MinimumOrder,
			MaxOrder:          m.MaxOrder,
			DeliveryTime:      m.DeliveryTime,
			Certifications:    m.Certifications,
			StockLabel:        m.StockLabel,
		})
	}

	created, err := h.catalogUC.ImportMedicines(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]int{"imported": created}, "Medicines imported successfully")
}

// UpdateStock handles updating the stock label of a catalog item
func (h *MedicineHandler) UpdateStock(c echo.Context) error {
	medicineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medicine ID")
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.catalogUC.SetStockLabel(c.Request().Context(), medicineID, req.StockLabel); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"stockLabel": req.StockLabel}, "Stock label updated successfully")
}
