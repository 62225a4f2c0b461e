package schema

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormschema "gorm.io/gorm/schema"
)

func parse(t *testing.T, model interface{}) *gormschema.Schema {
	t.Helper()
	s, err := gormschema.Parse(model, &sync.Map{}, gormschema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestTables_NamesMatchQueries(t *testing.T) {
	names := map[string]bool{}
	for _, m := range Tables {
		names[parse(t, m).Table] = true
	}
	for _, want := range []string{
		"department", "category", "product", "product_category", "attribute",
		"attribute_value", "product_attribute", "tax", "shipping_region", "shipping",
		"customer", "shopping_cart", "orders", "order_detail", "review",
	} {
		assert.True(t, names[want], "missing table %s", want)
	}
	assert.Len(t, names, len(Tables))
}

func TestCartLine_CompositeUniqueIndex(t *testing.T) {
	idx, ok := parse(t, &ShoppingCart{}).ParseIndexes()["ux_cart_line"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
	require.Len(t, idx.Fields, 3)
	assert.Equal(t, "cart_id", idx.Fields[0].DBName)
	assert.Equal(t, "product_id", idx.Fields[1].DBName)
	assert.Equal(t, "attributes", idx.Fields[2].DBName)
}

func TestReview_OnePerCustomerAndProduct(t *testing.T) {
	idx, ok := parse(t, &Review{}).ParseIndexes()["ux_review_customer_product"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Len(t, idx.Fields, 2)
}

func TestCustomer_EmailUnique(t *testing.T) {
	idx, ok := parse(t, &Customer{}).ParseIndexes()["ux_customer_email"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", idx.Class)
}

func TestProduct_ImageColumn(t *testing.T) {
	s := parse(t, &Product{})
	assert.NotNil(t, s.LookUpField("image_2"))
	assert.NotNil(t, s.LookUpField("discounted_price"))
}

func TestSeedRows_CoverSerialTables(t *testing.T) {
	seeded := map[string]bool{}
	for _, rows := range seedRows() {
		seeded[parse(t, rows).Table] = true
	}
	for table := range serials {
		assert.True(t, seeded[table], "serial reset for unseeded table %s", table)
	}
}

func TestProductAttributes_AllCombinations(t *testing.T) {
	pa := productAttributes()
	assert.Len(t, pa, 32)
	seen := map[[2]int]bool{}
	for _, r := range pa {
		seen[[2]int{r.ProductID, r.AttributeValueID}] = true
	}
	assert.Len(t, seen, 32)
}
