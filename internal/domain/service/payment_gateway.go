package service

import "context"

// CardDetails carries the raw card fields supplied by the client.
// Expiry arrives pre-parsed from the MM/YY input.
type CardDetails struct {
	Number   string
	ExpMonth int64
	ExpYear  int64
	CVC      string
}

// ChargeRequest describes a create-and-confirm payment intent call.
// Metadata is attached to the intent for later reconciliation (customer
// identity, serialized items, shipping address).
type ChargeRequest struct {
	AmountMinor     int64
	Currency        string
	PaymentMethodID string
	Description     string
	Metadata        map[string]string
}

// ChargeResult is the gateway's view of a payment intent.
type ChargeResult struct {
	IntentID string
	Status   string
}

// RefundRequest describes a refund command against a payment intent.
// A zero AmountMinor refunds the full charge.
type RefundRequest struct {
	IntentID    string
	AmountMinor int64
	Reason      string
}

// RefundResult is the gateway's view of a created refund.
type RefundResult struct {
	RefundID string
	Status   string
}

// PaymentGateway defines the interface to the external card-payment provider.
// Implementations translate provider failures into the domain error taxonomy
// (card declined, invalid request, gateway error).
type PaymentGateway interface {
	// CreatePaymentMethod tokenizes raw card details and returns a payment method ID.
	CreatePaymentMethod(ctx context.Context, card CardDetails) (string, error)

	// CreateAndConfirmIntent creates a payment intent and confirms it immediately.
	CreateAndConfirmIntent(ctx context.Context, req ChargeRequest) (*ChargeResult, error)

	// RetrieveIntent reads the current state of a payment intent.
	RetrieveIntent(ctx context.Context, intentID string) (*ChargeResult, error)

	// CreateRefund issues a refund against a payment intent.
	CreateRefund(ctx context.Context, req RefundRequest) (*RefundResult, error)
}
