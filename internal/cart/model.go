package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one shopping_cart row joined with the live product it points to.
type Line struct {
	ItemID          int             `json:"item_id"`
	CartID          string          `json:"cart_id"`
	ProductID       int             `json:"product_id"`
	Name            string          `json:"name"`
	Attributes      string          `json:"attributes"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Image           string          `json:"image"`
	BuyNow          bool            `json:"buy_now"`
	AddedOn         time.Time       `json:"added_on"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// UnitPrice is the discounted price when one is set, else the list price.
func (l Line) UnitPrice() decimal.Decimal {
	return EffectivePrice(l.Price, l.DiscountedPrice)
}

// EffectivePrice picks discounted when it is positive.
func EffectivePrice(price, discounted decimal.Decimal) decimal.Decimal {
	if discounted.IsPositive() {
		return discounted
	}
	return price
}

// LineTotal is quantity times the effective unit price.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}

// Total sums the line totals.
func Total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// Cart is the buy-now view of a cart id.
type Cart struct {
	Rows        []Line          `json:"rows"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Amount is the response of the total endpoint.
type Amount struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Deleted counts removed lines.
type Deleted struct {
	Deleted int64 `json:"deleted"`
}

// MaxQuantity caps a single cart line, merges included.
const MaxQuantity = 1000

// AddRequest payload of add-to-cart. A missing quantity means 1.
// swagger:model AddToCartRequest
type AddRequest struct {
	CartID     string `json:"cart_id"    example:"0b0c4c9e-7e59-4d87-a0f5-0d3d5ad7a2d4"`
	ProductID  int    `json:"product_id" binding:"required" example:"2"`
	Attributes string `json:"attributes" binding:"max=1000" example:"LG, Red"`
	Quantity   *int   `json:"quantity"   binding:"omitempty,max=1000" example:"1"`
}

// UpdateRequest payload of quantity change.
// swagger:model UpdateCartItemRequest
type UpdateRequest struct {
	Quantity int `json:"quantity" binding:"max=1000" example:"3"`
}

// IDResponse carries a freshly generated cart id.
type IDResponse struct {
	CartID string `json:"cart_id"`
}
