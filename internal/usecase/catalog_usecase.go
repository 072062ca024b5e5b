package usecase

import (
	"context"
	"time"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// ListMedicinesInput controls catalog listing. A zero Limit returns the
// whole active catalog without a pagination block.
type ListMedicinesInput struct {
	Page     int
	Limit    int
	Category string
}

// Pagination describes the page window of a listing response.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// ListMedicinesOutput returns a catalog page. Pagination is nil when the
// listing was unpaginated.
type ListMedicinesOutput struct {
	Medicines  []*entity.Medicine
	Pagination *Pagination
}

// MedicineInput is one item of a bulk catalog import.
type MedicineInput struct {
	Name              string
	Description       string
	PriceMinor        int64
	Category          string
	Manufacturer      string
	ImageURL          string
	Dosage            string
	ExpiryDate        *time.Time
	SideEffects       []string
	Contraindications []string
	MinimumOrder      int
	MaxOrder          int
	DeliveryTime      string
	Certifications    []string
	StockLabel        string
}

// ImportMedicinesInput defines a bulk catalog import.
type ImportMedicinesInput struct {
	Medicines []MedicineInput
}

// CatalogUsecase defines the interface for medicine catalog operations.
type CatalogUsecase interface {
	ListMedicines(ctx context.Context, input *ListMedicinesInput) (*ListMedicinesOutput, error)
	GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	ListCategories(ctx context.Context) ([]string, error)

	// ImportMedicines bulk-creates catalog items and returns the created count. Admin only.
	ImportMedicines(ctx context.Context, input *ImportMedicinesInput) (int, error)

	// SetStockLabel updates the availability indicator of a medicine. Admin only.
	SetStockLabel(ctx context.Context, id uuid.UUID, label string) error
}
