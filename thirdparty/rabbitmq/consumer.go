package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/digital-store/model"
	"github.com/muhammadheryan/digital-store/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// PaymentHandler fulfills a payment. It must be safe to call again for the same event.
type PaymentHandler interface {
	HandlePaymentSucceeded(ctx context.Context, event *model.PaymentSucceeded) (*model.FulfillmentResult, error)
}

type channel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Consumer struct {
	conn       *amqp091.Connection
	channel    channel
	handler    PaymentHandler
	maxRetries int64
	timeout    time.Duration
}

func NewConsumer(url string, retryDelay time.Duration, maxRetries int, handler PaymentHandler) (*Consumer, error) {
	conn, ch, err := dial(url, retryDelay)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:       conn,
		channel:    ch,
		handler:    handler,
		maxRetries: int64(maxRetries),
		timeout:    time.Minute,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		PaymentQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok { // channel closed
					logger.Warn("[PaymentConsumer] delivery channel closed")
					return
				}
				c.process(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) process(ctx context.Context, msg amqp091.Delivery) {
	var event model.PaymentSucceeded
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[PaymentConsumer] err unmarshal, dropping message", zap.String("error", err.Error()))
		c.park(ctx, msg)
		return
	}

	hctx, cancel := context.WithTimeout(ctx, c.timeout)
	res, err := c.handler.HandlePaymentSucceeded(hctx, &event)
	cancel()
	if err == nil {
		msg.Ack(false)
		logger.Info("[PaymentConsumer] payment fulfilled",
			zap.String("payment_intent", event.CorrelationID),
			zap.String("order_id", res.OrderID),
			zap.Bool("duplicate", res.Duplicate))
		return
	}

	attempts := deathCount(msg.Headers)
	if attempts >= c.maxRetries {
		logger.Error("[PaymentConsumer] retries exhausted, parking message",
			zap.String("payment_intent", event.CorrelationID),
			zap.Int64("attempts", attempts+1),
			zap.String("error", err.Error()))
		c.park(ctx, msg)
		return
	}

	logger.Warn("[PaymentConsumer] fulfillment failed, scheduling retry",
		zap.String("payment_intent", event.CorrelationID),
		zap.Int64("attempts", attempts+1),
		zap.String("error", err.Error()))
	// dead-letters to the retry queue
	msg.Nack(false, false)
}

// park moves the delivery to the parked queue. If that fails the delivery is
// requeued rather than lost.
func (c *Consumer) park(ctx context.Context, msg amqp091.Delivery) {
	err := c.channel.PublishWithContext(ctx, "", PaymentParkedQueue, false, false, amqp091.Publishing{
		ContentType:  msg.ContentType,
		DeliveryMode: amqp091.Persistent,
		MessageId:    msg.MessageId,
		Headers:      msg.Headers,
		Body:         msg.Body,
	})
	if err != nil {
		logger.Error("[PaymentConsumer] err park message", zap.String("error", err.Error()))
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
