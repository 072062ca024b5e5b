package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteRequestModel mirrors the 'quote_requests' table.
type QuoteRequestModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null"`
	Message    string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuoteRequestModel) TableName() string {
	return "quote_requests"
}
