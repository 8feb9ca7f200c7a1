package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MikeMC777/food-storefront/internal/money"
)

const PlacedRoutingKey = "orders.placed"

type Publisher interface {
	OrderPlaced(ctx context.Context, ev PlacedEvent) error
}

type PlacedEventItem struct {
	ItemID   int64        `json:"item_id"`
	Quantity int          `json:"quantity"`
	Subtotal money.Amount `json:"subtotal"`
}

// PlacedEvent is published once an order has committed.
type PlacedEvent struct {
	OrderID       int64             `json:"order_id"`
	UserID        int64             `json:"user_id"`
	OrderDate     time.Time         `json:"order_date"`
	TotalPrice    money.Amount      `json:"total_price"`
	PaymentMethod string            `json:"payment_method"`
	Items         []PlacedEventItem `json:"items"`
}

func newPlacedEvent(o *Order, lines []CartLine) PlacedEvent {
	items := make([]PlacedEventItem, len(lines))
	for i, l := range lines {
		items[i] = PlacedEventItem{ItemID: l.ItemID, Quantity: l.Quantity, Subtotal: money.New(l.Subtotal())}
	}
	return PlacedEvent{
		OrderID:       o.ID,
		UserID:        o.UserID,
		OrderDate:     o.OrderDate,
		TotalPrice:    o.TotalPrice,
		PaymentMethod: o.PaymentMode,
		Items:         items,
	}
}

type NopPublisher struct{}

func (NopPublisher) OrderPlaced(context.Context, PlacedEvent) error { return nil }

// AMQPPublisher publishes order events to a durable topic exchange. A
// channel or connection closed by the broker is reopened on the next publish.
type AMQPPublisher struct {
	url      string
	exchange string

	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, exchange: exchange}
	if err := p.connect(); err != nil {
		if p.conn != nil {
			_ = p.conn.Close()
		}
		return nil, err
	}
	return p, nil
}

// connect reopens whatever the broker has closed. Callers hold p.mu or own p.
func (p *AMQPPublisher) connect() error {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return fmt.Errorf("dial rabbitmq: %w", err)
		}
		p.conn = conn
		p.channel = nil
	}
	if p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		p.exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	p.channel = ch
	return nil
}

func (p *AMQPPublisher) OrderPlaced(ctx context.Context, ev PlacedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		return err
	}
	err = p.publish(ctx, ev, body)
	if errors.Is(err, amqp.ErrClosed) {
		log.Printf("[order] events channel closed, reconnecting")
		if err := p.connect(); err != nil {
			return err
		}
		err = p.publish(ctx, ev, body)
	}
	return err
}

func (p *AMQPPublisher) publish(ctx context.Context, ev PlacedEvent, body []byte) error {
	return p.channel.PublishWithContext(
		ctx,
		p.exchange,
		PlacedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    ev.OrderDate,
			Body:         body,
		})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
