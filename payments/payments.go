// Package payments wraps the payment provider behind a narrow interface so
// handlers and tests never touch the Stripe SDK directly.
package payments

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// IntentCreator creates a payment intent for an amount in the smallest
// currency unit and returns the client secret the frontend confirms with.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// StripeClient is the production IntentCreator.
type StripeClient struct{}

// NewStripeClient sets the account-wide secret key and returns a client.
func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (c *StripeClient) CreateIntent(_ context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
