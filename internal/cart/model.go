package cart

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-storefront/internal/money"
)

// Line is a cart row joined with its menu item.
type Line struct {
	CartID      int64        `json:"cart_id"`
	ItemID      int64        `json:"item_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Price       money.Amount `json:"price" swaggertype:"string"`
	Quantity    int          `json:"quantity"`
	Subtotal    money.Amount `json:"subtotal" swaggertype:"string"`
}

func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal.Decimal)
	}
	return total
}

// AddRequest payload of add to cart. quantity defaults to 1.
// swagger:model AddToCartRequest
type AddRequest struct {
	UserID   int64 `json:"user_id"  example:"7"`
	ItemID   int64 `json:"item_id"  example:"3"`
	Quantity *int  `json:"quantity" example:"2"`
}

// UpdateRequest payload of quantity change. quantity <= 0 removes the line.
// swagger:model UpdateCartRequest
type UpdateRequest struct {
	ItemID   int64 `json:"item_id"  example:"3"`
	Quantity *int  `json:"quantity" example:"1"`
}

// Response is the cart of one user.
// swagger:model CartResponse
type Response struct {
	Status string       `json:"status" example:"success"`
	Items  []Line       `json:"items"`
	Total  money.Amount `json:"total" swaggertype:"string" example:"45.00"`
}
