package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-storefront/internal/money"
)

type Repository interface {
	Add(ctx context.Context, userID, itemID int64, qty int) error
	List(ctx context.Context, userID int64) ([]Line, error)
	SetQuantity(ctx context.Context, userID, itemID int64, qty int) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Add increases the quantity of the user's line for itemID, creating it when
// missing. One statement, so concurrent adds of a new item end in one line.
func (r *PGRepo) Add(ctx context.Context, userID, itemID int64, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO cart (user_id, item_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`, userID, itemID, qty)
	return err
}

func (r *PGRepo) List(ctx context.Context, userID int64) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT c.cart_id, c.item_id, m.item_name, m.description, m.category, m.price::text, c.quantity
		FROM cart c
		JOIN menu m ON c.item_id = m.item_id
		WHERE c.user_id = $1
		ORDER BY c.cart_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Line{}
	for rows.Next() {
		var (
			l     Line
			price string
		)
		if err := rows.Scan(&l.CartID, &l.ItemID, &l.Name, &l.Description, &l.Category, &price, &l.Quantity); err != nil {
			return nil, err
		}
		if l.Price, err = money.Parse(price); err != nil {
			return nil, fmt.Errorf("item %d price %q: %w", l.ItemID, price, err)
		}
		l.Subtotal = money.New(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		out = append(out, l)
	}
	return out, rows.Err()
}

// SetQuantity sets the line quantity, or deletes the line when qty <= 0.
func (r *PGRepo) SetQuantity(ctx context.Context, userID, itemID int64, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if qty > 0 {
		_, err := r.db.Exec(ctx, `
			UPDATE cart SET quantity = $3 WHERE user_id = $1 AND item_id = $2
		`, userID, itemID, qty)
		return err
	}
	_, err := r.db.Exec(ctx, `DELETE FROM cart WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	return err
}
