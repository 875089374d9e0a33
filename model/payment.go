package model

import "github.com/shopspring/decimal"

// PaymentSucceeded is the gateway event that drives fulfillment. It may be delivered more than once.
type PaymentSucceeded struct {
	CorrelationID string            `json:"correlation_id" validate:"required"`
	AmountTotal   decimal.Decimal   `json:"amount_total"`
	PayerEmail    string            `json:"payer_email"`
	UserID        string            `json:"user_id,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	LineItems     []PaymentLineItem `json:"line_items" validate:"required,min=1,dive"`
}

type PaymentLineItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// Units returns the total number of units across all line items.
func (p *PaymentSucceeded) Units() int {
	n := 0
	for _, it := range p.LineItems {
		n += it.Quantity
	}
	return n
}

type FulfillmentResult struct {
	OrderID      string `json:"order_id"`
	Duplicate    bool   `json:"duplicate"`
	Units        int    `json:"units"`
	KeysAssigned int    `json:"keys_assigned"`
	KeysPending  int    `json:"keys_pending"`
}

type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0,lte=100"`
}

type OrderIntentRequest struct {
	Items []CartItem `json:"items" validate:"required,min=1,max=100,dive"`
	Email string     `json:"email" validate:"omitempty,email"`
}

type OrderIntentResponse struct {
	ClientSecret  string          `json:"client_secret"`
	PaymentIntent string          `json:"payment_intent"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
}

// PaymentIntentRequest is what checkout asks the gateway to create.
type PaymentIntentRequest struct {
	Amount    decimal.Decimal
	Currency  string
	Email     string
	UserID    string
	LineItems []PaymentLineItem
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}
