package order_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/audit"
	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/idempotency"
	"github.com/MikeMC777/shop-api/internal/memstore"
	"github.com/MikeMC777/shop-api/internal/order"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	store *memstore.Store
	carts *cart.Service
	svc   *order.Service
	audit *audit.Memory
}

// newFixture seeds two products whose cart lines add up to 25.00.
func newFixture() fixture {
	st := memstore.Demo()
	st.AddProduct(catalog.Product{ProductID: 10, Name: "Plain Tee", Price: d("10.00"), DiscountedPrice: d("0")})
	st.AddProduct(catalog.Product{ProductID: 11, Name: "Sale Tee", Price: d("8.00"), DiscountedPrice: d("5.00")})
	rec := &audit.Memory{}
	return fixture{
		store: st,
		carts: cart.NewService(st.Carts()),
		svc:   order.NewService(st.Orders(), idempotency.NewMemory(), rec, nil),
		audit: rec,
	}
}

func (f fixture) fill(t *testing.T, cartID string) {
	t.Helper()
	two := 2
	_, err := f.carts.Add(context.Background(), cart.AddRequest{CartID: cartID, ProductID: 10, Quantity: &two})
	require.NoError(t, err)
	_, err = f.carts.Add(context.Background(), cart.AddRequest{CartID: cartID, ProductID: 11})
	require.NoError(t, err)
}

func input(cartID string, customerID int) order.CreateInput {
	return order.CreateInput{
		CreateRequest: order.CreateRequest{CartID: cartID, ShippingID: 2, TaxID: 1},
		CustomerID:    customerID,
	}
}

func TestCreate_ComputesTotalAndEmptiesCart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")

	created, err := f.svc.Create(ctx, input("c1", 7))
	require.NoError(t, err)
	require.NotZero(t, created.OrderID)

	// 25.00 + round2(25.00 * 8.5%) + 10.00 shipping
	o, err := f.svc.ShortDetail(ctx, created.OrderID, 7)
	require.NoError(t, err)
	assert.True(t, o.TotalAmount.Equal(d("37.13")), o.TotalAmount.String())
	assert.Equal(t, order.StatusPlaced, o.Status)

	sum, err := f.svc.Summary(ctx, created.OrderID, 7)
	require.NoError(t, err)
	require.Len(t, sum.Rows, 2)
	assert.True(t, sum.Subtotal.Equal(d("25.00")))
	assert.True(t, sum.TaxAmount.Equal(d("2.13")))
	assert.True(t, sum.ShippingCost.Equal(d("10.00")))

	c, err := f.carts.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, c.Rows)

	require.Len(t, f.audit.Entries(), 1)
	assert.Equal(t, "create", f.audit.Entries()[0].Action)
}

func TestCreate_LeavesSavedLinesInCart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")
	saved, err := f.carts.Add(ctx, cart.AddRequest{CartID: "c1", ProductID: 1})
	require.NoError(t, err)
	_, err = f.carts.SaveForLater(ctx, saved.ItemID)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, input("c1", 7))
	require.NoError(t, err)

	rows, err := f.carts.Saved(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, input("empty", 7))
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	f.fill(t, "c1")
	in := input("c1", 7)
	in.TaxID = 99
	_, err = f.svc.Create(ctx, in)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	in = input("c1", 7)
	in.ShippingID = 99
	_, err = f.svc.Create(ctx, in)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	assert.Equal(t, 0, f.store.Counts()["orders"])
	assert.Equal(t, 2, f.store.Counts()["shopping_cart"])
}

func TestCreate_IsAtomic(t *testing.T) {
	for _, op := range []string{"insert_order", "insert_details", "clear_lines"} {
		t.Run(op, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()
			f.fill(t, "c1")
			f.store.Fault = func(got string) error {
				if got == op {
					return errors.New("disk on fire")
				}
				return nil
			}

			_, err := f.svc.Create(ctx, input("c1", 7))
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindInternal))

			counts := f.store.Counts()
			assert.Equal(t, 0, counts["orders"])
			assert.Equal(t, 0, counts["order_detail"])
			assert.Equal(t, 2, counts["shopping_cart"])
		})
	}
}

func TestSummary_IgnoresLaterPriceChanges(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")
	created, err := f.svc.Create(ctx, input("c1", 7))
	require.NoError(t, err)

	f.store.SetPrice(10, d("99.00"), d("0"))
	f.store.SetPrice(11, d("99.00"), d("0"))

	sum, err := f.svc.Summary(ctx, created.OrderID, 7)
	require.NoError(t, err)
	assert.True(t, sum.Subtotal.Equal(d("25.00")), sum.Subtotal.String())
	assert.True(t, sum.Rows[0].UnitCost.Equal(d("10.00")))
	assert.True(t, sum.Rows[1].UnitCost.Equal(d("5.00")))
	assert.True(t, sum.TotalAmount.Equal(d("37.13")))
}

func TestSummary_IgnoresLaterTaxAndShippingChanges(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")
	created, err := f.svc.Create(ctx, input("c1", 7))
	require.NoError(t, err)

	f.store.AddTax(tax.Tax{TaxID: 1, TaxType: "Sales Tax at 20%", TaxPercentage: d("20.00")})
	f.store.AddMethod(shipping.Method{ShippingID: 2, ShippingType: "3-4 Days ($15)", ShippingCost: d("15.00"), ShippingRegionID: 2})

	sum, err := f.svc.Summary(ctx, created.OrderID, 7)
	require.NoError(t, err)
	assert.Equal(t, "Sales Tax at 8.5%", sum.TaxType)
	assert.True(t, sum.TaxAmount.Equal(d("2.13")), sum.TaxAmount.String())
	assert.Equal(t, "3-4 Days ($10)", sum.ShippingType)
	assert.True(t, sum.ShippingCost.Equal(d("10.00")), sum.ShippingCost.String())
	assert.True(t, sum.Subtotal.Add(sum.TaxAmount).Add(sum.ShippingCost).Equal(sum.TotalAmount),
		"breakdown %s + %s + %s != %s", sum.Subtotal, sum.TaxAmount, sum.ShippingCost, sum.TotalAmount)
}

func TestCreate_SecondCheckoutOfSameCartFails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Create(ctx, input("c1", 7))
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			assert.True(t, apperr.Is(err, apperr.KindValidation))
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, f.store.Counts()["orders"])
}

func TestCreate_IdempotencyKeyReturnsFirstOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")

	in := input("c1", 7)
	in.IdempotencyKey = "abc"
	first, err := f.svc.Create(ctx, in)
	require.NoError(t, err)
	again, err := f.svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first.OrderID, again.OrderID)
	assert.Equal(t, 1, f.store.Counts()["orders"])
}

func TestCreate_FailedAttemptReleasesIdempotencyKey(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	in := input("c1", 7)
	in.IdempotencyKey = "retry"
	_, err := f.svc.Create(ctx, in)
	require.Error(t, err)

	f.fill(t, "c1")
	created, err := f.svc.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.OrderID)
}

// flakyGuard loses every Complete call.
type flakyGuard struct{ *idempotency.Memory }

func (flakyGuard) Complete(context.Context, string, int) error { return errors.New("redis: connection reset") }

func TestCreate_LostCompletionDoesNotPinKey(t *testing.T) {
	st := memstore.Demo()
	st.AddProduct(catalog.Product{ProductID: 10, Name: "Plain Tee", Price: d("10.00"), DiscountedPrice: d("0")})
	guard := flakyGuard{idempotency.NewMemory()}
	svc := order.NewService(st.Orders(), guard, nil, nil)
	carts := cart.NewService(st.Carts())
	ctx := context.Background()

	_, err := carts.Add(ctx, cart.AddRequest{CartID: "c1", ProductID: 10})
	require.NoError(t, err)
	in := input("c1", 7)
	in.IdempotencyKey = "lost"
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)

	// the retry is not told the key is still in flight
	_, err = svc.Create(ctx, in)
	assert.False(t, apperr.Is(err, apperr.KindConflict), "got %v", err)
	_, done, err := guard.Begin(ctx, "7:lost")
	assert.NoError(t, err)
	assert.False(t, done)
}

func TestOwnership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")
	created, err := f.svc.Create(ctx, input("c1", 7))
	require.NoError(t, err)

	_, err = f.svc.Summary(ctx, created.OrderID, 8)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	_, err = f.svc.ShortDetail(ctx, created.OrderID, 8)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	_, err = f.svc.UpdateStatus(ctx, created.OrderID, 8, order.StatusPaid)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	mine, err := f.svc.CustomerOrders(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	theirs, err := f.svc.CustomerOrders(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fill(t, "c1")
	created, err := f.svc.Create(ctx, input("c1", 7))
	require.NoError(t, err)
	id := created.OrderID

	_, err = f.svc.UpdateStatus(ctx, id, 7, order.StatusShipped)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = f.svc.UpdateStatus(ctx, id, 7, order.Status("lost"))
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	o, err := f.svc.UpdateStatus(ctx, id, 7, order.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, o.Status)
	assert.Nil(t, o.ShippedOn)

	o, err = f.svc.UpdateStatus(ctx, id, 7, order.StatusShipped)
	require.NoError(t, err)
	assert.NotNil(t, o.ShippedOn)

	_, err = f.svc.UpdateStatus(ctx, id, 7, order.StatusCancelled)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
