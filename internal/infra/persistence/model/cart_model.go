package model

import (
	"time"

	"github.com/google/uuid"
)

// CartEntryModel mirrors the 'cart_entries' table. The composite unique index
// on (user_id, medicine_id) backs the atomic upsert: one row per user and
// medicine, concurrent adds resolve to last write wins.
type CartEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_cart_user_medicine"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_cart_user_medicine"`
	Quantity   int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Medicine *MedicineModel `gorm:"foreignKey:MedicineID"`
}

// TableName explicitly sets the table name for GORM.
func (CartEntryModel) TableName() string {
	return "cart_entries"
}
