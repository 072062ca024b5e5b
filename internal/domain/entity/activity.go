package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies a user-activity log entry.
type ActivityType string

const (
	// ActivityFavorite records a user marking a medicine as favorite.
	ActivityFavorite ActivityType = "favorite"
	// ActivityAddToCart records a medicine being added to the cart.
	ActivityAddToCart ActivityType = "add_to_cart"
	// ActivityBuy records a completed purchase.
	ActivityBuy ActivityType = "buy"
	// ActivityRequestQuote records a bulk-quote request.
	ActivityRequestQuote ActivityType = "request_quote"
)

// String returns the string representation of the ActivityType.
func (t ActivityType) String() string {
	return string(t)
}

// IsValid checks if the ActivityType is a valid value.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityFavorite, ActivityAddToCart, ActivityBuy, ActivityRequestQuote:
		return true
	default:
		return false
	}
}

// Activity is one append-only entry in the user-activity log.
type Activity struct {
	ID         uuid.UUID    // The unique ID for this log entry.
	UserID     uuid.UUID    // The acting user.
	Type       ActivityType // What the user did.
	MedicineID uuid.UUID    // The medicine the action refers to.
	Quantity   int          // Optional quantity, meaningful for cart/buy/quote actions.
	CreatedAt  time.Time    // Timestamp of the action.
}
