package order

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-storefront/internal/money"
)

// memDB is an in-memory Store whose checkout transactions stage their writes
// and apply them only on Commit.

type cartRow struct {
	CartID   int64
	UserID   int64
	ItemID   int64
	Quantity int
}

var errInjected = errors.New("injected failure")

type memDB struct {
	mu         sync.Mutex
	menu       map[int64]decimal.Decimal
	names      map[int64]string
	cart       []cartRow
	orders     []Order
	items      []Item
	payments   []Payment
	deliveries []Delivery

	nextCartID  int64
	nextOrderID int64

	beginErr  error
	failAt    string
	afterRead func(db *memDB)
	begins    int
}

func newMemDB() *memDB {
	return &memDB{menu: map[int64]decimal.Decimal{}, names: map[int64]string{}}
}

func (db *memDB) addMenu(id int64, name, price string) {
	db.menu[id] = decimal.RequireFromString(price)
	db.names[id] = name
}

func (db *memDB) addCart(userID, itemID int64, qty int) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.nextCartID++
	db.cart = append(db.cart, cartRow{CartID: db.nextCartID, UserID: userID, ItemID: itemID, Quantity: qty})
	return db.nextCartID
}

func (db *memDB) cartOf(userID int64) []cartRow {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []cartRow
	for _, r := range db.cart {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

func (db *memDB) rowCounts() (orders, items, payments, deliveries int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.orders), len(db.items), len(db.payments), len(db.deliveries)
}

func (db *memDB) BeginCheckout(ctx context.Context) (CheckoutTx, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.begins++
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return &memTx{db: db}, nil
}

func (db *memDB) ListByUser(ctx context.Context, userID int64) ([]Summary, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := []Summary{}
	for _, o := range db.orders {
		if o.UserID != userID {
			continue
		}
		s := Summary{Order: o, Items: []Item{}}
		for _, it := range db.items {
			if it.OrderID == o.ID {
				it.ItemName = db.names[it.ItemID]
				s.Items = append(s.Items, it)
			}
		}
		for _, p := range db.payments {
			if p.OrderID == o.ID {
				p := p
				s.Payment = &p
			}
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

type memTx struct {
	db   *memDB
	done bool

	orders     []Order
	items      []Item
	payments   []Payment
	deliveries []Delivery
	deleted    map[int64]bool
}

func (tx *memTx) fail(step string) error {
	if tx.db.failAt == step {
		return errInjected
	}
	return nil
}

func (tx *memTx) LockCart(ctx context.Context, userID int64) ([]CartLine, error) {
	if err := tx.fail("read"); err != nil {
		return nil, err
	}
	tx.db.mu.Lock()
	var lines []CartLine
	for _, r := range tx.db.cart {
		if r.UserID != userID {
			continue
		}
		price, ok := tx.db.menu[r.ItemID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{CartID: r.CartID, ItemID: r.ItemID, Quantity: r.Quantity, UnitPrice: price})
	}
	tx.db.mu.Unlock()
	if tx.db.afterRead != nil {
		tx.db.afterRead(tx.db)
	}
	return lines, nil
}

func (tx *memTx) InsertOrder(ctx context.Context, o *Order) (int64, error) {
	if err := tx.fail("order"); err != nil {
		return 0, err
	}
	tx.db.mu.Lock()
	tx.db.nextOrderID++
	id := tx.db.nextOrderID
	tx.db.mu.Unlock()
	cp := *o
	cp.ID = id
	tx.orders = append(tx.orders, cp)
	return id, nil
}

func (tx *memTx) InsertItems(ctx context.Context, orderID int64, lines []CartLine) error {
	if err := tx.fail("items"); err != nil {
		return err
	}
	for _, l := range lines {
		tx.items = append(tx.items, Item{OrderID: orderID, ItemID: l.ItemID, Quantity: l.Quantity, Subtotal: money.New(l.Subtotal())})
	}
	return nil
}

func (tx *memTx) InsertPayment(ctx context.Context, p *Payment) error {
	if err := tx.fail("payment"); err != nil {
		return err
	}
	tx.payments = append(tx.payments, *p)
	return nil
}

func (tx *memTx) InsertDelivery(ctx context.Context, d *Delivery) error {
	if err := tx.fail("delivery"); err != nil {
		return err
	}
	tx.deliveries = append(tx.deliveries, *d)
	return nil
}

func (tx *memTx) DeleteCartLines(ctx context.Context, userID int64, cartIDs []int64) error {
	if err := tx.fail("clear"); err != nil {
		return err
	}
	tx.deleted = map[int64]bool{}
	for _, id := range cartIDs {
		tx.deleted[id] = true
	}
	return nil
}

func (tx *memTx) Commit(ctx context.Context) error {
	if tx.done {
		return errors.New("tx closed")
	}
	if err := tx.fail("commit"); err != nil {
		return err
	}
	tx.done = true
	db := tx.db
	db.mu.Lock()
	defer db.mu.Unlock()
	db.orders = append(db.orders, tx.orders...)
	db.items = append(db.items, tx.items...)
	db.payments = append(db.payments, tx.payments...)
	db.deliveries = append(db.deliveries, tx.deliveries...)
	kept := db.cart[:0]
	for _, r := range db.cart {
		if !tx.deleted[r.CartID] {
			kept = append(kept, r)
		}
	}
	db.cart = kept
	return nil
}

func (tx *memTx) Rollback(ctx context.Context) error {
	if tx.done {
		return errors.New("tx closed")
	}
	tx.done = true
	return nil
}

type recordingPublisher struct {
	events  []PlacedEvent
	ctxErrs []error
	err     error
}

func (p *recordingPublisher) OrderPlaced(ctx context.Context, ev PlacedEvent) error {
	p.events = append(p.events, ev)
	p.ctxErrs = append(p.ctxErrs, ctx.Err())
	return p.err
}
