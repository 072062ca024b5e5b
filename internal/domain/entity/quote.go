package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuoteRequest is a bulk-pricing inquiry filed by a user for a catalog item.
type QuoteRequest struct {
	ID         uuid.UUID // The unique ID for this request.
	UserID     uuid.UUID // The requesting user.
	MedicineID uuid.UUID // The medicine the quote is for.
	Quantity   int       // The requested bulk quantity.
	Message    string    // Free-form note to the sales team.
	CreatedAt  time.Time // Timestamp of when the request was filed.
}
