package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/muhammadheryan/digital-store/constant"
	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/utils/errors"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"go.uber.org/zap"
)

const maxWebhookBody = 64 << 10

// EventPublisher hands a verified payment event to the fulfillment queue.
type EventPublisher interface {
	PublishPaymentSucceeded(ctx context.Context, event *model.PaymentSucceeded) error
}

// PaymentWebhook handler
// @Summary Payment provider webhook
// @Description Receives payment_intent.succeeded deliveries. The signature header is verified before anything is queued.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /webhook/payment [post]
func (s *RestHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	event, err := s.Gateway.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		writeError(w, err)
		return
	}
	if event == nil {
		// other event types are acknowledged and dropped
		writeSuccess(w, nil)
		return
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishPaymentSucceeded(ctx, event); err != nil {
			logger.Error("[PaymentWebhook] err PublishPaymentSucceeded",
				zap.String("error", err.Error()),
				zap.String("correlation_id", event.CorrelationID))
			writeError(w, errors.SetCustomError(constant.ErrInternal))
			return
		}
		writeSuccess(w, nil)
		return
	}

	// no broker: fulfill inline and let the provider retry on failure
	res, err := s.FulfillmentApp.HandlePaymentSucceeded(ctx, event)
	if err != nil {
		logger.Error("[PaymentWebhook] err HandlePaymentSucceeded",
			zap.String("error", err.Error()),
			zap.String("correlation_id", event.CorrelationID))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, res)
}
