package rabbitmq

import (
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	PaymentExchange      = "payment_exchange"
	PaymentRetryExchange = "payment_retry_exchange"
	PaymentRoutingKey    = "payment_succeeded"
	PaymentQueue         = "payment_succeeded_queue"
	PaymentRetryQueue    = "payment_succeeded_retry_queue"
	PaymentParkedQueue   = "payment_succeeded_parked_queue"
)

// declareTopology sets up the payment queues. A rejected delivery on PaymentQueue is
// dead-lettered to PaymentRetryQueue, which holds it for retryDelay and dead-letters it
// back to PaymentQueue. PaymentParkedQueue keeps deliveries that ran out of retries.
func declareTopology(ch *amqp091.Channel, retryDelay time.Duration) error {
	for _, ex := range []string{PaymentExchange, PaymentRetryExchange} {
		if err := ch.ExchangeDeclare(
			ex,       // name
			"direct", // type
			true,     // durable
			false,    // auto-delete
			false,    // internal
			false,    // no-wait
			nil,      // arguments
		); err != nil {
			return err
		}
	}

	queues := []struct {
		name     string
		exchange string
		args     amqp091.Table
	}{
		{
			name:     PaymentQueue,
			exchange: PaymentExchange,
			args:     amqp091.Table{"x-dead-letter-exchange": PaymentRetryExchange},
		},
		{
			name:     PaymentRetryQueue,
			exchange: PaymentRetryExchange,
			args: amqp091.Table{
				"x-message-ttl":             retryDelay.Milliseconds(),
				"x-dead-letter-exchange":    PaymentExchange,
				"x-dead-letter-routing-key": PaymentRoutingKey,
			},
		},
		{
			name: PaymentParkedQueue,
		},
	}

	for _, q := range queues {
		if _, err := ch.QueueDeclare(
			q.name, // name
			true,   // durable
			false,  // auto-delete
			false,  // exclusive
			false,  // no-wait
			q.args, // arguments
		); err != nil {
			return err
		}
		if q.exchange == "" {
			continue
		}
		if err := ch.QueueBind(q.name, PaymentRoutingKey, q.exchange, false, nil); err != nil {
			return err
		}
	}
	return nil
}

// dial opens a connection and channel with the payment topology declared.
func dial(url string, retryDelay time.Duration) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel, retryDelay); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// deathCount returns how many times the delivery was rejected from PaymentQueue,
// read from the broker's x-death header.
func deathCount(headers amqp091.Table) int64 {
	deaths, ok := headers["x-death"].([]interface{})
	if !ok {
		return 0
	}
	for _, d := range deaths {
		entry, ok := d.(amqp091.Table)
		if !ok {
			continue
		}
		if entry["queue"] != PaymentQueue || entry["reason"] != "rejected" {
			continue
		}
		switch n := entry["count"].(type) {
		case int64:
			return n
		case int32:
			return int64(n)
		case int:
			return int64(n)
		}
	}
	return 0
}
