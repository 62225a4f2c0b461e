package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/db"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrStatusChanged = errors.New("order status changed concurrently")
)

// Pricing resolves the tax and shipping rows an order refers to.
type Pricing interface {
	Tax(ctx context.Context, id int) (*tax.Tax, error)
	Shipping(ctx context.Context, id int) (*shipping.Method, error)
}

// Tx is the unit of work of a checkout.
type Tx interface {
	Pricing
	// CheckoutLines returns the buy-now lines of a cart, locked for the rest of the tx.
	CheckoutLines(ctx context.Context, cartID string) ([]cart.Line, error)
	InsertOrder(ctx context.Context, o *Order) error
	InsertDetails(ctx context.Context, orderID int, details []Detail) error
	ClearLines(ctx context.Context, itemIDs []int) error
}

type Store interface {
	InTx(ctx context.Context, fn func(Tx) error) error
	Order(ctx context.Context, id int) (*Order, error)
	Details(ctx context.Context, orderID int) ([]Detail, error)
	ByCustomer(ctx context.Context, customerID int) ([]Order, error)
	// UpdateStatus moves the order to `to` only if it is still in `from`.
	UpdateStatus(ctx context.Context, id int, from, to Status) error
}

type PGStore struct{ db db.Pool }

func NewPGStore(p db.Pool) *PGStore { return &PGStore{db: p} }

func (s *PGStore) InTx(ctx context.Context, fn func(Tx) error) error {
	return db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		return fn(&pgTx{
			tx:       tx,
			carts:    cart.NewPGRepo(tx),
			taxes:    tax.NewPGRepo(tx),
			shipping: shipping.NewPGRepo(tx),
		})
	})
}

const orderColumns = `order_id, customer_id, cart_id, shipping_id, tax_id, total_amount,
	status, created_on, shipped_on, tax_type, tax_amount, shipping_type, shipping_cost`

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(&o.OrderID, &o.CustomerID, &o.CartID, &o.ShippingID, &o.TaxID,
		&o.TotalAmount, &o.Status, &o.CreatedOn, &o.ShippedOn,
		&o.TaxType, &o.TaxAmount, &o.ShippingType, &o.ShippingCost)
}

func (s *PGStore) Order(ctx context.Context, id int) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var o Order
	err := scanOrder(s.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id), &o)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *PGStore) Details(ctx context.Context, orderID int) ([]Detail, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT item_id, order_id, product_id, product_name, attributes, quantity,
		       unit_price, discounted_price, unit_cost
		FROM order_detail WHERE order_id = $1 ORDER BY item_id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ItemID, &d.OrderID, &d.ProductID, &d.ProductName, &d.Attributes,
			&d.Quantity, &d.UnitPrice, &d.DiscountedPrice, &d.UnitCost); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PGStore) ByCustomer(ctx context.Context, customerID int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE customer_id = $1
		ORDER BY created_on DESC, order_id DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *PGStore) UpdateStatus(ctx context.Context, id int, from, to Status) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, `
		UPDATE orders
		SET status = $3,
		    shipped_on = CASE WHEN $3 = 'shipped' THEN NOW() ELSE shipped_on END
		WHERE order_id = $1 AND status = $2
	`, id, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStatusChanged
	}
	return nil
}

type pgTx struct {
	tx       pgx.Tx
	carts    *cart.PGRepo
	taxes    *tax.PGRepo
	shipping *shipping.PGRepo
}

func (t *pgTx) CheckoutLines(ctx context.Context, cartID string) ([]cart.Line, error) {
	return t.carts.LockCheckout(ctx, cartID)
}

func (t *pgTx) Tax(ctx context.Context, id int) (*tax.Tax, error) { return t.taxes.Get(ctx, id) }

func (t *pgTx) Shipping(ctx context.Context, id int) (*shipping.Method, error) {
	return t.shipping.Method(ctx, id)
}

func (t *pgTx) InsertOrder(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	err := t.tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, cart_id, shipping_id, tax_id, total_amount, status, created_on,
		                    tax_type, tax_amount, shipping_type, shipping_cost)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7, $8, $9, $10)
		RETURNING order_id, created_on
	`, o.CustomerID, o.CartID, o.ShippingID, o.TaxID, o.TotalAmount, o.Status,
		o.TaxType, o.TaxAmount, o.ShippingType, o.ShippingCost).Scan(&o.OrderID, &o.CreatedOn)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (t *pgTx) InsertDetails(ctx context.Context, orderID int, details []Detail) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	for _, d := range details {
		if _, err := t.tx.Exec(ctx, `
			INSERT INTO order_detail (order_id, product_id, product_name, attributes, quantity,
			                          unit_price, discounted_price, unit_cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, orderID, d.ProductID, d.ProductName, d.Attributes, d.Quantity,
			d.UnitPrice, d.DiscountedPrice, d.UnitCost); err != nil {
			return fmt.Errorf("insert order detail: %w", err)
		}
	}
	return nil
}

func (t *pgTx) ClearLines(ctx context.Context, itemIDs []int) error {
	if err := t.carts.RemoveItems(ctx, itemIDs); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
