package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	metadataCartItems = "cart_items"
	// stripe caps a metadata value at 500 characters, so the cart is spread over
	// cart_items_0, cart_items_1, ...
	metadataValueLimit = 500
	metadataUserID    = "user_id"
	metadataEmail     = "email"
)

type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{api: sc, webhookSecret: webhookSecret}
}

// cartItem is the compact cart encoding kept in intent metadata.
type cartItem struct {
	ProductID string `json:"p"`
	Quantity  int    `json:"q"`
	UnitPrice string `json:"u"`
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntent, error) {
	items := make([]cartItem, 0, len(req.LineItems))
	for _, it := range req.LineItems {
		items = append(items, cartItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice.StringFixed(2)})
	}
	cart, err := cartMetadata(items)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ToMinorUnits(req.Amount)),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
		params.AddMetadata(metadataEmail, req.Email)
	}
	if req.UserID != "" {
		params.AddMetadata(metadataUserID, req.UserID)
	}
	for k, v := range cart {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &model.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) IssueRefund(ctx context.Context, paymentIntentID string, amount decimal.Decimal, idempotencyKey string) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Amount:        stripe.Int64(ToMinorUnits(amount)),
	}
	params.SetIdempotencyKey(idempotencyKey)
	params.Context = ctx

	r, err := g.api.Refunds.New(params)
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*model.PaymentSucceeded, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidSignature)
	}
	if event.Type != stripe.EventTypePaymentIntentSucceeded {
		return nil, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("decode payment intent: %w", err)
	}
	return paymentSucceededFromIntent(&pi)
}

func paymentSucceededFromIntent(pi *stripe.PaymentIntent) (*model.PaymentSucceeded, error) {
	items, err := cartFromMetadata(pi.Metadata)
	if err != nil {
		return nil, fmt.Errorf("decode cart of %s: %w", pi.ID, err)
	}

	lines := make([]model.PaymentLineItem, 0, len(items))
	for _, it := range items {
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("decode unit price of %s: %w", pi.ID, err)
		}
		lines = append(lines, model.PaymentLineItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: price})
	}

	amount := pi.AmountReceived
	if amount == 0 {
		amount = pi.Amount
	}
	email := pi.ReceiptEmail
	if email == "" {
		email = pi.Metadata[metadataEmail]
	}

	return &model.PaymentSucceeded{
		CorrelationID: pi.ID,
		AmountTotal:   FromMinorUnits(amount),
		PayerEmail:    email,
		UserID:        pi.Metadata[metadataUserID],
		PaymentMethod: constant.PaymentMethodStripe,
		LineItems:     lines,
	}, nil
}

func cartChunkKey(i int) string {
	return metadataCartItems + "_" + strconv.Itoa(i)
}

// cartMetadata encodes the cart into metadata values of at most metadataValueLimit
// characters each, never splitting a rune.
func cartMetadata(items []cartItem) (map[string]string, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	cart := string(raw)

	md := make(map[string]string)
	for i := 0; cart != ""; i++ {
		n := len(cart)
		if n > metadataValueLimit {
			n = metadataValueLimit
			for n > 0 && !utf8.RuneStart(cart[n]) {
				n--
			}
		}
		md[cartChunkKey(i)] = cart[:n]
		cart = cart[n:]
	}
	return md, nil
}

// cartFromMetadata joins the chunks written by cartMetadata. Intents created before
// chunking carry the whole cart under cart_items.
func cartFromMetadata(md map[string]string) ([]cartItem, error) {
	var b strings.Builder
	for i := 0; ; i++ {
		chunk, ok := md[cartChunkKey(i)]
		if !ok {
			break
		}
		b.WriteString(chunk)
	}
	raw := b.String()
	if raw == "" {
		raw = md[metadataCartItems]
	}

	var items []cartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
