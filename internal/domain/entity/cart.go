package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartEntry is one line of a user's shopping cart. The (UserID, MedicineID)
// pair is unique; adding the same medicine again replaces the quantity.
type CartEntry struct {
	ID         uuid.UUID // The unique ID for this cart line.
	UserID     uuid.UUID // The owning user.
	MedicineID uuid.UUID // The medicine in the cart.
	Quantity   int       // The desired quantity; always replaces, never accumulates.
	Medicine   *Medicine // The catalog item, populated on reads.
	CreatedAt  time.Time // Timestamp of when this line was first created.
	UpdatedAt  time.Time // Timestamp of the last quantity change.
}
