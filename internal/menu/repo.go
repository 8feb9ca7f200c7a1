// Package menu provides the repository interface and PostgreSQL implementation for managing menu items.
package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-storefront/internal/money"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	List(ctx context.Context, category string) ([]Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const itemColumns = `item_id, item_name, description, category, price::text, availability, image`

func scanItem(row pgx.Row) (*Item, error) {
	var (
		it    Item
		price string
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Category, &price, &it.Availability, &it.Image); err != nil {
		return nil, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("item %d price %q: %w", it.ID, price, err)
	}
	it.Price = money.New(p)
	return &it, nil
}

// List returns every item, or the items whose category contains category
// when it is set and not "all".
func (r *PGRepo) List(ctx context.Context, category string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	category = strings.TrimSpace(category)
	if strings.EqualFold(category, "all") {
		category = ""
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM menu
		WHERE ($1 = '' OR category ILIKE '%'||$1||'%')
		ORDER BY item_id
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM menu WHERE item_id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return it, err
}

func (r *PGRepo) Create(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO menu (item_name, description, category, price, availability)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING item_id
	`, it.Name, it.Description, it.Category, it.Price.StringFixed(2), it.Availability).Scan(&it.ID)
}

func (r *PGRepo) Update(ctx context.Context, it *Item) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu
		SET item_name = $2,
		    description = $3,
		    category = $4,
		    price = $5,
		    image = $6
		WHERE item_id = $1
	`, it.ID, it.Name, it.Description, it.Category, it.Price.StringFixed(2), it.Image)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu WHERE item_id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
