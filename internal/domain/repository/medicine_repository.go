package repository

import (
	"context"
	"errors"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMedicineNotFound is a domain-specific error returned when a medicine is not found.
var ErrMedicineNotFound = errors.New("medicine not found")

// ListMedicinesParams controls catalog listing. A zero Limit disables
// pagination and returns the full active catalog.
type ListMedicinesParams struct {
	Page     int    // 1-based page number; values below 1 are treated as 1.
	Limit    int    // Page size; 0 means no pagination.
	Category string // Optional category filter.
}

// MedicineRepository defines the standard operations for catalog persistence.
type MedicineRepository interface {
	// FindByID retrieves a single active medicine by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)

	// List returns a page of active medicines plus the total count of matches.
	List(ctx context.Context, params ListMedicinesParams) ([]*entity.Medicine, int64, error)

	// Categories returns the distinct categories of active medicines.
	Categories(ctx context.Context) ([]string, error)

	// Create persists a new medicine to the storage.
	Create(ctx context.Context, medicine *entity.Medicine) error

	// CreateBatch persists a set of medicines in one statement, used by bulk import.
	CreateBatch(ctx context.Context, medicines []*entity.Medicine) error

	// UpdateStockLabel sets the availability indicator on a medicine.
	UpdateStockLabel(ctx context.Context, id uuid.UUID, label entity.StockLabel) error
}
