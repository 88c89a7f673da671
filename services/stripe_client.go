package services

import (
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/charge"
)

// StripeChargeClient talks to Stripe's Charges API. stripe.Key must be set
// before use (main does this from config).
type StripeChargeClient struct{}

func NewStripeChargeClient(secretKey string) *StripeChargeClient {
	stripe.Key = secretKey
	return &StripeChargeClient{}
}

func (c *StripeChargeClient) CreateCharge(amountCents int64, currency, token, description string) (string, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	if err := params.SetSource(token); err != nil {
		return "", &PaymentError{Reason: "invalid payment token"}
	}

	ch, err := charge.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			// Stripe's Msg is written for cardholders (e.g. "Your card
			// was declined."); internal detail stays out of the response.
			return "", &PaymentError{Reason: stripeErr.Msg}
		}
		return "", &PaymentError{Reason: "payment could not be processed"}
	}

	return ch.ID, nil
}
