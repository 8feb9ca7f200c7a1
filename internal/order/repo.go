package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-storefront/internal/money"
)

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// BeginCheckout starts a read-committed transaction. The cart rows it reads
// are locked until commit, so a second checkout of the same cart waits and
// then sees the lines already gone.
func (r *PGRepo) BeginCheckout(ctx context.Context) (CheckoutTx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	return &pgCheckout{tx: tx}, nil
}

type pgCheckout struct{ tx pgx.Tx }

func (c *pgCheckout) LockCart(ctx context.Context, userID int64) ([]CartLine, error) {
	rows, err := c.tx.Query(ctx, `
    SELECT c.cart_id, c.item_id, c.quantity, m.price::text
    FROM cart c
    JOIN menu m ON m.item_id = c.item_id
    WHERE c.user_id = $1
    ORDER BY c.cart_id
    FOR UPDATE OF c
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []CartLine
	for rows.Next() {
		var (
			l     CartLine
			price string
		)
		if err := rows.Scan(&l.CartID, &l.ItemID, &l.Quantity, &price); err != nil {
			return nil, err
		}
		if l.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("item %d price %q: %w", l.ItemID, price, err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (c *pgCheckout) InsertOrder(ctx context.Context, o *Order) (int64, error) {
	var id int64
	err := c.tx.QueryRow(ctx, `
    INSERT INTO orders (user_id, order_date, total_price, payment_mode, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING order_id
  `, o.UserID, o.OrderDate, o.TotalPrice.StringFixed(2), o.PaymentMode, o.Status).Scan(&id)
	return id, err
}

func (c *pgCheckout) InsertItems(ctx context.Context, orderID int64, lines []CartLine) error {
	for _, l := range lines {
		if _, err := c.tx.Exec(ctx, `
      INSERT INTO order_items (order_id, item_id, quantity, subtotal)
      VALUES ($1,$2,$3,$4)
    `, orderID, l.ItemID, l.Quantity, l.Subtotal().StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

func (c *pgCheckout) InsertPayment(ctx context.Context, p *Payment) error {
	_, err := c.tx.Exec(ctx, `
    INSERT INTO payments (order_id, amount, payment_method, transaction_status)
    VALUES ($1,$2,$3,$4)
  `, p.OrderID, p.Amount.StringFixed(2), p.PaymentMethod, p.TransactionStatus)
	return err
}

func (c *pgCheckout) InsertDelivery(ctx context.Context, d *Delivery) error {
	_, err := c.tx.Exec(ctx, `
    INSERT INTO delivery_info (order_id, delivery_address, delivery_status, estimated_time)
    VALUES ($1,$2,$3,$4)
  `, d.OrderID, d.Address, d.Status, d.EstimatedTime)
	return err
}

func (c *pgCheckout) DeleteCartLines(ctx context.Context, userID int64, cartIDs []int64) error {
	_, err := c.tx.Exec(ctx, `
    DELETE FROM cart WHERE user_id = $1 AND cart_id = ANY($2)
  `, userID, cartIDs)
	return err
}

func (c *pgCheckout) Commit(ctx context.Context) error   { return c.tx.Commit(ctx) }
func (c *pgCheckout) Rollback(ctx context.Context) error { return c.tx.Rollback(ctx) }

// ListByUser reads orders, items and payments from a single snapshot.
func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
    SELECT order_id, order_date, total_price::text, payment_mode, status
    FROM orders WHERE user_id = $1
    ORDER BY order_date DESC, order_id DESC
  `, userID)
	if err != nil {
		return nil, err
	}
	out := []Summary{}
	byID := map[int64]int{}
	for rows.Next() {
		var (
			s     Summary
			total string
		)
		if err := rows.Scan(&s.ID, &s.OrderDate, &total, &s.PaymentMode, &s.Status); err != nil {
			rows.Close()
			return nil, err
		}
		if s.TotalPrice, err = money.Parse(total); err != nil {
			rows.Close()
			return nil, fmt.Errorf("order %d total %q: %w", s.ID, total, err)
		}
		s.UserID = userID
		s.Items = []Item{}
		byID[s.ID] = len(out)
		out = append(out, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	rows, err = tx.Query(ctx, `
    SELECT oi.order_id, oi.item_id, COALESCE(m.item_name, ''), oi.quantity, oi.subtotal::text
    FROM order_items oi
    JOIN orders o ON o.order_id = oi.order_id
    LEFT JOIN menu m ON m.item_id = oi.item_id
    WHERE o.user_id = $1
    ORDER BY oi.order_id, oi.item_id
  `, userID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			it       Item
			subtotal string
		)
		if err := rows.Scan(&it.OrderID, &it.ItemID, &it.ItemName, &it.Quantity, &subtotal); err != nil {
			rows.Close()
			return nil, err
		}
		if it.Subtotal, err = money.Parse(subtotal); err != nil {
			rows.Close()
			return nil, fmt.Errorf("order %d item %d subtotal %q: %w", it.OrderID, it.ItemID, subtotal, err)
		}
		if i, ok := byID[it.OrderID]; ok {
			out[i].Items = append(out[i].Items, it)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.Query(ctx, `
    SELECT p.order_id, p.amount::text, p.payment_method, p.transaction_status
    FROM payments p
    JOIN orders o ON o.order_id = p.order_id
    WHERE o.user_id = $1
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			p      Payment
			amount string
		)
		if err := rows.Scan(&p.OrderID, &amount, &p.PaymentMethod, &p.TransactionStatus); err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("order %d amount %q: %w", p.OrderID, amount, err)
		}
		if i, ok := byID[p.OrderID]; ok {
			out[i].Payment = &p
		}
	}
	return out, rows.Err()
}
