package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MikeMC777/food-storefront/internal/money"
)

var (
	ErrValidation = errors.New("all fields are required")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrConnection = errors.New("store unavailable")
	ErrStorage    = errors.New("storage failure")
)

// Store opens checkout transactions and reads order history.
type Store interface {
	BeginCheckout(ctx context.Context) (CheckoutTx, error)
	ListByUser(ctx context.Context, userID int64) ([]Summary, error)
}

// CheckoutTx is the write set of one order placement. Nothing is visible to
// other sessions until Commit; Rollback after Commit is a no-op.
type CheckoutTx interface {
	LockCart(ctx context.Context, userID int64) ([]CartLine, error)
	InsertOrder(ctx context.Context, o *Order) (int64, error)
	InsertItems(ctx context.Context, orderID int64, lines []CartLine) error
	InsertPayment(ctx context.Context, p *Payment) error
	InsertDelivery(ctx context.Context, d *Delivery) error
	DeleteCartLines(ctx context.Context, userID int64, cartIDs []int64) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Service struct {
	store  Store
	events Publisher
	eta    time.Duration
	now    func() time.Time
}

func NewService(store Store, events Publisher, eta time.Duration) *Service {
	if events == nil {
		events = NopPublisher{}
	}
	return &Service{store: store, events: events, eta: eta, now: time.Now}
}

// Place turns the user's cart into an order. The order, its items, payment
// and delivery rows and the removal of the consumed cart lines commit
// together or not at all.
func (s *Service) Place(ctx context.Context, req PlaceOrderRequest) (int64, error) {
	address := strings.TrimSpace(req.DeliveryAddress)
	if req.UserID <= 0 || address == "" || req.PaymentMethod == "" {
		return 0, ErrValidation
	}

	tx, err := s.store.BeginCheckout(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: begin: %w", ErrConnection, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	lines, err := tx.LockCart(ctx, req.UserID)
	if err != nil {
		return 0, fmt.Errorf("%w: read cart: %w", ErrStorage, err)
	}
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	label, txStatus := NormalizePayment(req.PaymentMethod)
	now := s.now().UTC()
	o := &Order{
		UserID:      req.UserID,
		OrderDate:   now,
		TotalPrice:  money.New(Total(lines)),
		PaymentMode: label,
		Status:      StatusPending,
	}

	o.ID, err = tx.InsertOrder(ctx, o)
	if err != nil {
		return 0, fmt.Errorf("%w: insert order: %w", ErrStorage, err)
	}
	if err := tx.InsertItems(ctx, o.ID, lines); err != nil {
		return 0, fmt.Errorf("%w: insert items: %w", ErrStorage, err)
	}
	if err := tx.InsertPayment(ctx, &Payment{
		OrderID:           o.ID,
		Amount:            o.TotalPrice.Decimal,
		PaymentMethod:     label,
		TransactionStatus: txStatus,
	}); err != nil {
		return 0, fmt.Errorf("%w: insert payment: %w", ErrStorage, err)
	}
	if err := tx.InsertDelivery(ctx, &Delivery{
		OrderID:       o.ID,
		Address:       address,
		Status:        StatusPending,
		EstimatedTime: now.Add(s.eta),
	}); err != nil {
		return 0, fmt.Errorf("%w: insert delivery: %w", ErrStorage, err)
	}

	cartIDs := make([]int64, len(lines))
	for i, l := range lines {
		cartIDs[i] = l.CartID
	}
	if err := tx.DeleteCartLines(ctx, req.UserID, cartIDs); err != nil {
		return 0, fmt.Errorf("%w: clear cart: %w", ErrStorage, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%w: commit: %w", ErrStorage, err)
	}
	log.Printf("[order] placed order_id=%d user_id=%d lines=%d total=%s", o.ID, o.UserID, len(lines), o.TotalPrice.StringFixed(2))

	// Published even when the caller has already gone away.
	if err := s.events.OrderPlaced(context.WithoutCancel(ctx), newPlacedEvent(o, lines)); err != nil {
		log.Printf("[order] publish order_id=%d: %v", o.ID, err)
	}
	return o.ID, nil
}

// History returns the user's orders, newest first.
func (s *Service) History(ctx context.Context, userID int64) ([]Summary, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	out, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %w", ErrStorage, err)
	}
	return out, nil
}
