package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-storefront/internal/money"
)

const (
	StatusPending = "pending"

	TxPending    = "pending"
	TxSuccessful = "successful"
)

// CartLine is one cart row captured at checkout, priced from the menu at
// read time.
type CartLine struct {
	CartID    int64
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums the line subtotals.
func Total(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

type Order struct {
	ID          int64        `json:"order_id"`
	UserID      int64        `json:"-"`
	OrderDate   time.Time    `json:"order_date"`
	TotalPrice  money.Amount `json:"total_price" swaggertype:"string"`
	PaymentMode string       `json:"payment_mode"`
	Status      string       `json:"status"`
}

type Item struct {
	OrderID  int64        `json:"-"`
	ItemID   int64        `json:"item_id"`
	ItemName string       `json:"item_name"`
	Quantity int          `json:"quantity"`
	Subtotal money.Amount `json:"subtotal" swaggertype:"string"`
}

type Payment struct {
	OrderID           int64           `json:"-"`
	Amount            decimal.Decimal `json:"-"`
	PaymentMethod     string          `json:"payment_method"`
	TransactionStatus string          `json:"transaction_status"`
}

type Delivery struct {
	OrderID       int64
	Address       string
	Status        string
	EstimatedTime time.Time
}

// Summary is an order as returned by the history endpoint.
type Summary struct {
	Order
	Items   []Item   `json:"items"`
	Payment *Payment `json:"payment,omitempty"`
}
