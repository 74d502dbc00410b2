package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ToastExchange = "notifications_fanout"

// AMQPToaster mirrors toasts to a fanout exchange so secondary screens
// (kitchen displays) can show them too.
type AMQPToaster struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex

	Exchange  string
	PartnerID string
}

func DialAMQP(url, partnerID string) (*AMQPToaster, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(ToastExchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &AMQPToaster{conn: conn, ch: ch, Exchange: ToastExchange, PartnerID: partnerID}, nil
}

func (a *AMQPToaster) Toast(ctx context.Context, t Toast) error {
	body, err := json.Marshal(t)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// amqp channels are not safe for concurrent publishing.
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ch.PublishWithContext(ctx, a.Exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Transient,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"x-partner-id": a.PartnerID},
		Body:         body,
	})
}

func (a *AMQPToaster) Close() {
	if a.ch != nil {
		_ = a.ch.Close()
	}
	if a.conn != nil {
		_ = a.conn.Close()
	}
}
