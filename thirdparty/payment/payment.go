package payment

import (
	"context"

	"github.com/muhammadheryan/digital-store/model"
	"github.com/shopspring/decimal"
)

// Gateway is the card payment provider. The provider itself is opaque to the store:
// it creates intents for checkout, verifies webhook deliveries and issues refunds.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntent, error)
	// IssueRefund refunds amount of the payment and returns the provider's refund id.
	// Calls sharing an idempotency key are executed by the provider at most once.
	IssueRefund(ctx context.Context, paymentIntentID string, amount decimal.Decimal, idempotencyKey string) (string, error)
	// ParseWebhook verifies and decodes a webhook delivery. Event types other than a
	// succeeded payment return nil.
	ParseWebhook(payload []byte, signature string) (*model.PaymentSucceeded, error)
}

// ToMinorUnits converts an amount to cents.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts cents to an amount.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
