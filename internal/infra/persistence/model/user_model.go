package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// The unique index name is load-bearing: constraint violations are mapped back
// to the colliding field by index name.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_users_email"`
	Phone        string    `gorm:"type:varchar(50)"`
	Street       string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(100)"`
	Zip          string    `gorm:"type:varchar(20)"`
	Country      string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
