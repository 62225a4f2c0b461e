package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	sales := Tax{TaxID: 1, TaxType: "Sales Tax at 8.5%", TaxPercentage: decimal.RequireFromString("8.50")}
	assert.Equal(t, "2.13", sales.Amount(decimal.NewFromInt(25)).StringFixed(2))

	none := Tax{TaxID: 2, TaxType: "No Tax", TaxPercentage: decimal.Zero}
	assert.True(t, none.Amount(decimal.NewFromInt(25)).IsZero())
}
