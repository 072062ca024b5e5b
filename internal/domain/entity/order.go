package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks fulfilment progress. Transitions are forward-only:
// processing -> shipped -> delivered, or processing -> cancelled.
type OrderStatus string

const (
	// OrderStatusProcessing is the initial state of every persisted order.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped means the package has left the warehouse.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered means the package reached the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled means the order was cancelled before shipping.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from the current status to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// PaymentStatus tracks the money side of an order independently of fulfilment.
type PaymentStatus string

const (
	// PaymentStatusSucceeded is the only state an order can be created in.
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	// PaymentStatusRefunded is set by the explicit reconciliation step after a gateway refund.
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusSucceeded, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Order is a completed purchase. Orders exist only after the payment gateway
// reported a successful charge; item names and prices are immutable snapshots
// taken at purchase time, never re-derived from the catalog.
type Order struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the order.
	PaymentIntentID string        // The gateway's payment intent identifier.
	CustomerName    string        // Snapshot of the customer's name at purchase time.
	CustomerEmail   string        // Snapshot of the customer's email at purchase time.
	ShippingAddress Address       // Snapshot of the shipping address.
	Items           []OrderItem   // Immutable line-item snapshots.
	TotalMinor      int64         // Sum of item price x quantity, in the minor currency unit.
	Currency        string        // ISO currency code the charge was made in.
	OrderStatus     OrderStatus   // Fulfilment state.
	PaymentStatus   PaymentStatus // Money state.
	CreatedAt       time.Time     // Timestamp of when this order was persisted.
	UpdatedAt       time.Time     // Timestamp of the last status change.
}

// OrderItem is one immutable line of an order.
type OrderItem struct {
	ID         uuid.UUID // The unique ID for this order line.
	OrderID    uuid.UUID // The owning order.
	MedicineID uuid.UUID // The catalog item purchased.
	Name       string    // Snapshot of the medicine name at purchase time.
	PriceMinor int64     // Snapshot of the unit price at purchase time.
	Quantity   int       // Quantity purchased.
}

// Total computes the order total from its item snapshots.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.PriceMinor * int64(item.Quantity)
	}

	return total
}
