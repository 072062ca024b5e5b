package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_admins_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
