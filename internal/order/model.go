package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPlaced:  {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusShipped, StatusCancelled},
	StatusShipped: {StatusDelivered},
}

// CanMove reports whether an order may go from one status to the next.
func CanMove(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPlaced, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	OrderID     int             `json:"order_id"`
	CustomerID  int             `json:"customer_id"`
	CartID      string          `json:"cart_id"`
	ShippingID  int             `json:"shipping_id"`
	TaxID       int             `json:"tax_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      Status          `json:"status"`
	CreatedOn   time.Time       `json:"created_on"`
	ShippedOn   *time.Time      `json:"shipped_on"`

	// Charges as they stood at checkout. Later edits to the tax and
	// shipping tables do not reach placed orders.
	TaxType      string          `json:"tax_type"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	ShippingType string          `json:"shipping_type"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
}

// Detail is a line frozen at checkout; it never follows later price changes.
type Detail struct {
	ItemID          int             `json:"item_id"`
	OrderID         int             `json:"order_id"`
	ProductID       int             `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Attributes      string          `json:"attributes"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

func (d Detail) lineTotal() decimal.Decimal {
	return d.UnitCost.Mul(decimal.NewFromInt(int64(d.Quantity))).Round(2)
}

// Summary is an order with its lines. Subtotal plus the order's tax and
// shipping always equals TotalAmount.
type Summary struct {
	Order
	Rows     []Detail        `json:"rows"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
