package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Item rows are immutable snapshots
// written together with the order; they are never updated afterwards.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PaymentIntentID string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_orders_payment_intent"`
	CustomerName    string    `gorm:"type:varchar(100)"`
	CustomerEmail   string    `gorm:"type:varchar(255);not null;index"`
	Street          string    `gorm:"type:varchar(255)"`
	City            string    `gorm:"type:varchar(100)"`
	State           string    `gorm:"type:varchar(100)"`
	Zip             string    `gorm:"type:varchar(20)"`
	Country         string    `gorm:"type:varchar(100)"`
	TotalMinor      int64     `gorm:"not null"`
	Currency        string    `gorm:"type:varchar(10);not null"`
	OrderStatus     string    `gorm:"type:varchar(20);not null"`
	PaymentStatus   string    `gorm:"type:varchar(20);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PriceMinor int64     `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
