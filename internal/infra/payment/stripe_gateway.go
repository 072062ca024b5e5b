// Package payment provides the card payment gateway implementation backed by Stripe.
package payment

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"medisupply/config"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/service"
)

// stripeGateway is a concrete implementation of the PaymentGateway interface.
type stripeGateway struct {
	api *client.API
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.StripeSecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Payment.StripeSecretKey, nil)

	return &stripeGateway{api: api}, nil
}

// CreatePaymentMethod tokenizes raw card details at the gateway and returns
// the payment method identifier. Card data never touches our storage.
func (g *stripeGateway) CreatePaymentMethod(ctx context.Context, card service.CardDetails) (string, error) {
	params := &stripe.PaymentMethodParams{
		Type: stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(card.ExpMonth),
			ExpYear:  stripe.Int64(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
	}
	params.Context = ctx

	pm, err := g.api.PaymentMethods.New(params)
	if err != nil {
		return "", translateStripeError(err)
	}

	return pm.ID, nil
}

// CreateAndConfirmIntent creates a payment intent and confirms it in a single
// call. Redirect-based methods are disabled; this is a server-side charge.
func (g *stripeGateway) CreateAndConfirmIntent(ctx context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, translateStripeError(err)
	}

	return &service.ChargeResult{
		IntentID: intent.ID,
		Status:   string(intent.Status),
	}, nil
}

// RetrieveIntent reads the current state of a payment intent from the gateway.
func (g *stripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*service.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, translateStripeError(err)
	}

	return &service.ChargeResult{
		IntentID: intent.ID,
		Status:   string(intent.Status),
	}, nil
}

// CreateRefund refunds a charge, fully when no amount is given.
func (g *stripeGateway) CreateRefund(ctx context.Context, req service.RefundRequest) (*service.RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.IntentID),
	}
	if req.AmountMinor > 0 {
		params.Amount = stripe.Int64(req.AmountMinor)
	}
	if req.Reason != "" {
		params.Reason = stripe.String(req.Reason)
	}
	params.Context = ctx

	refund, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, translateStripeError(err)
	}

	return &service.RefundResult{
		RefundID: refund.ID,
		Status:   string(refund.Status),
	}, nil
}

// translateStripeError maps gateway errors onto domain errors. Card failures
// surface the gateway's own message so the customer sees the decline reason.
func translateStripeError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return errors.Wrap(domainerrors.ErrPaymentGateway, err.Error())
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeCard:
		return domainerrors.ErrCardDeclined.WithDetails(stripeErr.Msg)
	case stripe.ErrorTypeInvalidRequest:
		return domainerrors.ErrInvalidPaymentRequest.WithDetails(stripeErr.Msg)
	default:
		return domainerrors.ErrPaymentGateway.WithDetails(stripeErr.Msg)
	}
}
