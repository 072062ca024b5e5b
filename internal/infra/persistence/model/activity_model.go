package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the append-only 'user_activities' table.
type ActivityModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(30);not null"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "user_activities"
}
