package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/digital-store/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAck struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *fakeAck) Ack(uint64, bool) error { a.acked++; return nil }
func (a *fakeAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}
func (a *fakeAck) Reject(uint64, bool) error { return nil }

type fakeChannel struct {
	published []string
	err       error
}

func (c *fakeChannel) Qos(int, int, bool) error { return nil }
func (c *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp091.Table) (<-chan amqp091.Delivery, error) {
	return nil, nil
}
func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, _ amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, key)
	return nil
}
func (c *fakeChannel) Close() error { return nil }

type handlerFunc func(ctx context.Context, event *model.PaymentSucceeded) (*model.FulfillmentResult, error)

func (f handlerFunc) HandlePaymentSucceeded(ctx context.Context, event *model.PaymentSucceeded) (*model.FulfillmentResult, error) {
	return f(ctx, event)
}

func delivery(t *testing.T, ack *fakeAck, body []byte, deaths int64) amqp091.Delivery {
	t.Helper()
	d := amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
	if deaths > 0 {
		d.Headers = amqp091.Table{"x-death": []interface{}{
			amqp091.Table{"queue": PaymentRetryQueue, "reason": "expired", "count": deaths},
			amqp091.Table{"queue": PaymentQueue, "reason": "rejected", "count": deaths},
		}}
	}
	return d
}

func TestConsumer_process(t *testing.T) {
	event, err := json.Marshal(&model.PaymentSucceeded{CorrelationID: "pi_1"})
	require.NoError(t, err)

	ok := handlerFunc(func(context.Context, *model.PaymentSucceeded) (*model.FulfillmentResult, error) {
		return &model.FulfillmentResult{OrderID: "o1"}, nil
	})
	failing := handlerFunc(func(context.Context, *model.PaymentSucceeded) (*model.FulfillmentResult, error) {
		return nil, errors.New("db down")
	})

	tests := []struct {
		name       string
		handler    PaymentHandler
		body       []byte
		deaths     int64
		publishErr error
		wantAck    int
		wantNack   int
		requeue    bool
		wantParked bool
	}{
		{name: "success acks", handler: ok, body: event, wantAck: 1},
		{name: "failure goes to retry queue", handler: failing, body: event, deaths: 1, wantNack: 1},
		{name: "retries exhausted parks", handler: failing, body: event, deaths: 3, wantAck: 1, wantParked: true},
		{name: "malformed body parks", handler: ok, body: []byte("{"), wantAck: 1, wantParked: true},
		{name: "park failure requeues", handler: failing, body: event, deaths: 3, publishErr: errors.New("closed"), wantNack: 1, requeue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAck{}
			ch := &fakeChannel{err: tt.publishErr}
			c := &Consumer{channel: ch, handler: tt.handler, maxRetries: 3, timeout: time.Second}

			c.process(context.Background(), delivery(t, ack, tt.body, tt.deaths))

			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantNack, ack.nacked)
			assert.Equal(t, tt.requeue, ack.requeue)
			if tt.wantParked {
				assert.Equal(t, []string{PaymentParkedQueue}, ch.published)
			} else {
				assert.Empty(t, ch.published)
			}
		})
	}
}

func TestDeathCount(t *testing.T) {
	assert.Zero(t, deathCount(nil))
	assert.Zero(t, deathCount(amqp091.Table{"x-death": "garbage"}))
	assert.Equal(t, int64(2), deathCount(amqp091.Table{"x-death": []interface{}{
		amqp091.Table{"queue": PaymentQueue, "reason": "rejected", "count": int64(2)},
	}}))
}
