package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reserve struct {
	ID          int64
	Description string
	Customer    Customer
	CartItems   []CartItem
	CreatedAt   time.Time
}

// CartItem is one line of a reserve. Product is only populated when the item
// is read back from storage.
type CartItem struct {
	ID        int64
	ReserveID int64
	ProductID int64
	Quantity  int
	Product   *Product
}

// LineTotal returns quantity x unit price. Items without a loaded product
// contribute zero.
func (i CartItem) LineTotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
