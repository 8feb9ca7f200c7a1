package order

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	log.SetOutput(io.Discard)
}

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newTestService(db *memDB, pub Publisher) *Service {
	s := NewService(db, pub, 45*time.Minute)
	s.now = func() time.Time { return fixedNow }
	return s
}

// seedBakerStreet is user 7 with {item 3, qty 2, 10.00} and {item 5, qty 1, 25.00}.
func seedBakerStreet() *memDB {
	db := newMemDB()
	db.addMenu(3, "Paneer Tikka", "10.00")
	db.addMenu(5, "Biryani", "25.00")
	db.addCart(7, 3, 2)
	db.addCart(7, 5, 1)
	return db
}

func TestPlace_BakerStreet(t *testing.T) {
	db := seedBakerStreet()
	other := db.addCart(8, 3, 4)
	pub := &recordingPublisher{}
	svc := newTestService(db, pub)

	id, err := svc.Place(context.Background(), PlaceOrderRequest{
		UserID: 7, DeliveryAddress: "221B Baker St", PaymentMethod: "cod",
	})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	if len(db.orders) != 1 {
		t.Fatalf("orders=%d, want 1", len(db.orders))
	}
	o := db.orders[0]
	want := decimal.RequireFromString("45.00")
	if o.ID != id || !o.TotalPrice.Equal(want) {
		t.Fatalf("order=%+v, want id=%d total=45.00", o, id)
	}
	if o.Status != StatusPending || o.PaymentMode != LabelCashOnDelivery || !o.OrderDate.Equal(fixedNow) {
		t.Fatalf("order=%+v", o)
	}

	if len(db.payments) != 1 {
		t.Fatalf("payments=%d, want 1", len(db.payments))
	}
	p := db.payments[0]
	if !p.Amount.Equal(want) || p.TransactionStatus != TxPending || p.PaymentMethod != LabelCashOnDelivery || p.OrderID != id {
		t.Fatalf("payment=%+v", p)
	}

	if len(db.items) != 2 {
		t.Fatalf("items=%d, want 2", len(db.items))
	}
	subtotals := map[int64]string{}
	for _, it := range db.items {
		if it.OrderID != id {
			t.Fatalf("item %+v not linked to order %d", it, id)
		}
		subtotals[it.ItemID] = it.Subtotal.StringFixed(2)
	}
	if subtotals[3] != "20.00" || subtotals[5] != "25.00" {
		t.Fatalf("subtotals=%v", subtotals)
	}

	if len(db.deliveries) != 1 {
		t.Fatalf("deliveries=%d, want 1", len(db.deliveries))
	}
	d := db.deliveries[0]
	if d.Address != "221B Baker St" || d.Status != StatusPending || !d.EstimatedTime.Equal(fixedNow.Add(45*time.Minute)) {
		t.Fatalf("delivery=%+v", d)
	}

	if n := len(db.cartOf(7)); n != 0 {
		t.Fatalf("cart of user 7 has %d lines after checkout", n)
	}
	if rows := db.cartOf(8); len(rows) != 1 || rows[0].CartID != other {
		t.Fatalf("cart of user 8 changed: %+v", rows)
	}

	if len(pub.events) != 1 || pub.events[0].OrderID != id || len(pub.events[0].Items) != 2 {
		t.Fatalf("events=%+v", pub.events)
	}
}

func TestPlace_TotalMatchesItems(t *testing.T) {
	db := newMemDB()
	db.addMenu(1, "Chai", "1.10")
	db.addMenu(2, "Samosa", "0.35")
	db.addMenu(3, "Thali", "12.99")
	db.addCart(1, 1, 3)
	db.addCart(1, 2, 7)
	db.addCart(1, 3, 1)
	svc := newTestService(db, nil)

	if _, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 1, DeliveryAddress: "x", PaymentMethod: "upi"}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	sum := decimal.Zero
	for _, it := range db.items {
		sum = sum.Add(it.Subtotal.Decimal)
	}
	if !db.orders[0].TotalPrice.Equal(sum) || !db.payments[0].Amount.Equal(sum) {
		t.Fatalf("total=%s amount=%s items=%s", db.orders[0].TotalPrice, db.payments[0].Amount, sum)
	}
	if sum.StringFixed(2) != "18.74" {
		t.Fatalf("sum=%s, want 18.74", sum.StringFixed(2))
	}
}

func TestPlace_EmptyCart(t *testing.T) {
	db := newMemDB()
	db.addMenu(3, "Paneer Tikka", "10.00")
	db.addCart(9, 3, 1)
	pub := &recordingPublisher{}
	svc := newTestService(db, pub)

	_, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "221B Baker St", PaymentMethod: "cod"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err=%v, want ErrEmptyCart", err)
	}
	if o, i, p, d := db.rowCounts(); o+i+p+d != 0 {
		t.Fatalf("rows written: orders=%d items=%d payments=%d deliveries=%d", o, i, p, d)
	}
	if len(db.cartOf(9)) != 1 {
		t.Fatalf("unrelated cart touched")
	}
	if len(pub.events) != 0 {
		t.Fatalf("event published for empty cart")
	}
}

func TestPlace_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"missing user", PlaceOrderRequest{DeliveryAddress: "221B Baker St", PaymentMethod: "cod"}},
		{"missing address", PlaceOrderRequest{UserID: 7, PaymentMethod: "cod"}},
		{"blank address", PlaceOrderRequest{UserID: 7, DeliveryAddress: "   ", PaymentMethod: "cod"}},
		{"missing payment", PlaceOrderRequest{UserID: 7, DeliveryAddress: "221B Baker St"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := seedBakerStreet()
			svc := newTestService(db, nil)
			_, err := svc.Place(context.Background(), tc.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err=%v, want ErrValidation", err)
			}
			if db.begins != 0 {
				t.Fatalf("store touched %d times before validation", db.begins)
			}
		})
	}
}

func TestPlace_FailureRollsBackEverything(t *testing.T) {
	for _, step := range []string{"read", "order", "items", "payment", "delivery", "clear", "commit"} {
		t.Run(step, func(t *testing.T) {
			db := seedBakerStreet()
			db.failAt = step
			pub := &recordingPublisher{}
			svc := newTestService(db, pub)

			_, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "221B Baker St", PaymentMethod: "cod"})
			if !errors.Is(err, ErrStorage) || !errors.Is(err, errInjected) {
				t.Fatalf("err=%v, want ErrStorage wrapping the cause", err)
			}
			if o, i, p, d := db.rowCounts(); o+i+p+d != 0 {
				t.Fatalf("partial write: orders=%d items=%d payments=%d deliveries=%d", o, i, p, d)
			}
			if n := len(db.cartOf(7)); n != 2 {
				t.Fatalf("cart has %d lines, want 2", n)
			}
			if len(pub.events) != 0 {
				t.Fatalf("event published for failed checkout")
			}
		})
	}
}

func TestPlace_ConnectionError(t *testing.T) {
	db := seedBakerStreet()
	db.beginErr = errors.New("dial tcp: connection refused")
	svc := newTestService(db, nil)

	_, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "221B Baker St", PaymentMethod: "cod"})
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("err=%v, want ErrConnection", err)
	}
}

func TestPlace_KeepsLinesAddedAfterRead(t *testing.T) {
	db := seedBakerStreet()
	var late int64
	db.afterRead = func(db *memDB) {
		if late == 0 {
			late = db.addCart(7, 5, 3)
		}
	}
	svc := newTestService(db, nil)

	if _, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "221B Baker St", PaymentMethod: "online"}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	rows := db.cartOf(7)
	if len(rows) != 1 || rows[0].CartID != late {
		t.Fatalf("cart after checkout=%+v, want only line %d", rows, late)
	}
	if !db.orders[0].TotalPrice.Equal(decimal.RequireFromString("45")) {
		t.Fatalf("late line counted in total: %s", db.orders[0].TotalPrice)
	}
}

func TestPlace_PublishFailureKeepsOrder(t *testing.T) {
	db := seedBakerStreet()
	svc := newTestService(db, &recordingPublisher{err: errors.New("broker down")})

	id, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "221B Baker St", PaymentMethod: "cod"})
	if err != nil || id == 0 {
		t.Fatalf("id=%d err=%v", id, err)
	}
	if len(db.orders) != 1 {
		t.Fatalf("orders=%d", len(db.orders))
	}
}

func TestPlace_PublishesAfterCallerCancels(t *testing.T) {
	db := seedBakerStreet()
	pub := &recordingPublisher{}
	svc := newTestService(db, pub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	db.afterRead = func(*memDB) { cancel() }

	if _, err := svc.Place(ctx, PlaceOrderRequest{UserID: 7, DeliveryAddress: "221B Baker St", PaymentMethod: "cod"}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(pub.events) != 1 || pub.ctxErrs[0] != nil {
		t.Fatalf("events=%d ctxErrs=%v", len(pub.events), pub.ctxErrs)
	}
}

func TestPlace_PaymentMethods(t *testing.T) {
	cases := []struct {
		token, label, status string
	}{
		{"cod", LabelCashOnDelivery, TxPending},
		{"online", LabelOnline, TxSuccessful},
		{"upi", LabelOnline, TxSuccessful},
		{"bitcoin", LabelCashOnDelivery, TxSuccessful},
	}
	for _, tc := range cases {
		db := seedBakerStreet()
		svc := newTestService(db, nil)
		if _, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "a", PaymentMethod: tc.token}); err != nil {
			t.Fatalf("%s: %v", tc.token, err)
		}
		if db.orders[0].PaymentMode != tc.label || db.payments[0].PaymentMethod != tc.label || db.payments[0].TransactionStatus != tc.status {
			t.Fatalf("%s: order=%+v payment=%+v", tc.token, db.orders[0], db.payments[0])
		}
	}
}

func TestHistory(t *testing.T) {
	db := seedBakerStreet()
	svc := newTestService(db, nil)
	first, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "a", PaymentMethod: "cod"})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	db.addCart(7, 5, 2)
	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	second, err := svc.Place(context.Background(), PlaceOrderRequest{UserID: 7, DeliveryAddress: "a", PaymentMethod: "upi"})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	out, err := svc.History(context.Background(), 7)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(out) != 2 || out[0].ID != second || out[1].ID != first {
		t.Fatalf("history order=%+v", out)
	}
	if len(out[1].Items) != 2 || out[1].Payment == nil || out[1].Payment.TransactionStatus != TxPending {
		t.Fatalf("first order=%+v", out[1])
	}

	if _, err := svc.History(context.Background(), 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("err=%v, want ErrValidation", err)
	}
}
