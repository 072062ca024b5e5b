package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockLabel is the coarse availability indicator shown on catalog listings.
type StockLabel string

const (
	// StockLabelInStock indicates normal availability.
	StockLabelInStock StockLabel = "In Stock"
	// StockLabelLowStock indicates limited availability.
	StockLabelLowStock StockLabel = "Low Stock"
	// StockLabelOutOfStock indicates the item cannot currently be ordered.
	StockLabelOutOfStock StockLabel = "Out of Stock"
)

// String returns the string representation of the StockLabel.
func (s StockLabel) String() string {
	return string(s)
}

// IsValid checks if the StockLabel is a valid value.
func (s StockLabel) IsValid() bool {
	switch s {
	case StockLabelInStock, StockLabelLowStock, StockLabelOutOfStock:
		return true
	default:
		return false
	}
}

// Medicine is a catalog item available for purchase.
type Medicine struct {
	ID                uuid.UUID  // The Global Unique Identifier (GUID) for the medicine.
	Name              string     // The commercial name of the product.
	Description       string     // A longer description of the product.
	PriceMinor        int64      // Unit price in the minor currency unit (e.g., cents).
	Category          string     // The catalog category, e.g., "Antibiotics".
	Manufacturer      string     // The producing laboratory or brand.
	ImageURL          string     // URL of the product image.
	Dosage            string     // Dosage description, e.g., "500mg twice daily".
	ExpiryDate        *time.Time // Shelf expiry date of the batch, if known.
	SideEffects       []string   // Known side effects.
	Contraindications []string   // Conditions under which the medicine must not be taken.
	MinimumOrder      int        // Smallest orderable quantity; zero means no floor.
	MaxOrder          int        // Largest orderable quantity; zero means no cap.
	DeliveryTime      string     // Expected delivery window, e.g., "2-3 business days".
	Certifications    []string   // Regulatory certifications held by the product.
	Rating            float64    // Average customer rating.
	ReviewCount       int        // Number of customer reviews behind the rating.
	StockLabel        StockLabel // Coarse availability indicator.
	Active            bool       // Inactive medicines are hidden from catalog reads.
	CreatedAt         time.Time  // Timestamp of when this item was created.
	UpdatedAt         time.Time  // Timestamp of the last modification.
}
