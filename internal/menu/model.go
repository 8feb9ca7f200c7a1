package menu

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-storefront/internal/money"
)

type Item struct {
	ID           int64        `json:"item_id"`
	Name         string       `json:"item_name"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Price        money.Amount `json:"price" swaggertype:"string"`
	Availability bool         `json:"availability"`
	Image        *string      `json:"image"`
}

// ListResponse represents the menu listing.
// swagger:model MenuListResponse
type ListResponse struct {
	Status string `json:"status" example:"success"`
	Items  []Item `json:"items"`
}

// ItemResponse wraps a single menu item.
// swagger:model MenuItemResponse
type ItemResponse struct {
	Status string `json:"status" example:"success"`
	Item   Item   `json:"item"`
}

// CreateItemRequest payload of creation.
// swagger:model CreateMenuItemRequest
type CreateItemRequest struct {
	Name        string          `json:"name"        example:"Masala Dosa"`
	Description string          `json:"description" example:"Rice crepe with potato filling"`
	Category    string          `json:"category"    example:"South Indian"`
	Price       decimal.Decimal `json:"price"       swaggertype:"string" example:"7.50"`
}

// UpdateItemRequest payload of full update. image may be null.
// swagger:model UpdateMenuItemRequest
type UpdateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Image       *string         `json:"image"`
}

// CreateItemResponse is returned after an item was added.
// swagger:model CreateMenuItemResponse
type CreateItemResponse struct {
	Status  string `json:"status"  example:"success"`
	Message string `json:"message" example:"Menu item added successfully"`
	ItemID  int64  `json:"item_id" example:"12"`
}
