package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestUnitPrice_PrefersPositiveDiscount(t *testing.T) {
	assert.True(t, Line{Price: d("16.95"), DiscountedPrice: d("15.95")}.UnitPrice().Equal(d("15.95")))
	assert.True(t, Line{Price: d("14.99"), DiscountedPrice: d("0")}.UnitPrice().Equal(d("14.99")))
}

func TestTotal(t *testing.T) {
	lines := []Line{
		{Price: d("10.00"), Quantity: 2},
		{Price: d("20.00"), DiscountedPrice: d("5.00"), Quantity: 1},
	}
	assert.True(t, Total(lines).Equal(d("25.00")), Total(lines).String())
	assert.True(t, Total(nil).IsZero())
}
