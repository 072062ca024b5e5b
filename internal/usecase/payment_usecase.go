package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CardInput carries the raw card fields from the checkout form.
// Expiry uses the MM/YY form and is rejected before any gateway call when
// strictly in the past.
type CardInput struct {
	Number string
	Expiry string
	CVC    string
}

// PaymentItemInput is one purchased line. Prices are snapshotted from the
// catalog at charge time, never trusted from the client.
type PaymentItemInput struct {
	MedicineID uuid.UUID
	Quantity   int
}

// CustomerInput identifies the paying customer for gateway metadata.
type CustomerInput struct {
	Name  string
	Email string
}

// ProcessPaymentInput defines a checkout request.
type ProcessPaymentInput struct {
	Card            CardInput
	AmountMinor     int64
	Currency        string
	Items           []PaymentItemInput
	Customer        CustomerInput
	ShippingAddress string
}

// ProcessPaymentOutput reports a completed charge. OrderSaved is false in the
// degraded case where the gateway charge succeeded but the local order write
// failed; the payment still counts as successful.
type ProcessPaymentOutput struct {
	OrderID         uuid.UUID
	PaymentIntentID string
	OrderSaved      bool
}

// RefundInput defines a gateway refund command. A zero AmountMinor refunds
// the full charge. The local order record is reconciled separately through
// OrderUsecase.UpdatePaymentStatus.
type RefundInput struct {
	IntentID    string
	AmountMinor int64
	Reason      string
}

// RefundOutput reports a created refund.
type RefundOutput struct {
	RefundID string
	Status   string
}

// PaymentUsecase defines the interface for payment processing operations.
type PaymentUsecase interface {
	ProcessPayment(ctx context.Context, input *ProcessPaymentInput) (*ProcessPaymentOutput, error)

	// GetPaymentStatus reads the charge state straight from the gateway.
	GetPaymentStatus(ctx context.Context, intentID string) (string, error)

	// Refund issues a refund at the gateway. Admin only.
	Refund(ctx context.Context, input *RefundInput) (*RefundOutput, error)
}
