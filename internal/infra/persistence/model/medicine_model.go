package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicineModel mirrors the 'medicines' table. Prices are stored in the minor
// currency unit, never as floats.
type MedicineModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string     `gorm:"type:varchar(255);not null"`
	Description       string     `gorm:"type:text"`
	PriceMinor        int64      `gorm:"not null"`
	Category          string     `gorm:"type:varchar(100);index"`
	Manufacturer      string     `gorm:"type:varchar(255)"`
	ImageURL          string     `gorm:"type:text"`
	Dosage            string     `gorm:"type:varchar(255)"`
	ExpiryDate        *time.Time `gorm:"type:date"`
	SideEffects       []string   `gorm:"type:jsonb;serializer:json"`
	Contraindications []string   `gorm:"type:jsonb;serializer:json"`
	MinimumOrder      int        `gorm:"not null;default:0"`
	MaxOrder          int        `gorm:"not null;default:0"`
	DeliveryTime      string     `gorm:"type:varchar(100)"`
	Certifications    []string   `gorm:"type:jsonb;serializer:json"`
	Rating            float64    `gorm:"not null;default:0"`
	ReviewCount       int        `gorm:"not null;default:0"`
	StockLabel        string     `gorm:"type:varchar(20);not null"`
	Active            bool       `gorm:"not null;default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}
