package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/shop-api/internal/db"
)

var (
	ErrNotFound       = errors.New("cart item not found")
	ErrUnknownProduct = errors.New("product does not exist")
)

type Repository interface {
	// Add merges quantity into the (cart, product, attributes) line and
	// returns its item id.
	Add(ctx context.Context, cartID string, productID int, attributes string, qty int) (int, error)
	Line(ctx context.Context, itemID int) (*Line, error)
	Lines(ctx context.Context, cartID string, buyNow bool) ([]Line, error)
	SetQuantity(ctx context.Context, itemID, qty int) error
	SetBuyNow(ctx context.Context, itemID int, buyNow bool) error
	Remove(ctx context.Context, itemID int) (int64, error)
	Empty(ctx context.Context, cartID string) (int64, error)
}

type PGRepo struct{ db db.Querier }

func NewPGRepo(q db.Querier) *PGRepo { return &PGRepo{db: q} }

const lineSelect = `
	SELECT sc.item_id, sc.cart_id, sc.product_id, p.name, sc.attributes, sc.quantity,
	       p.price, p.discounted_price, COALESCE(p.thumbnail, ''), sc.buy_now, sc.added_on
	FROM shopping_cart sc
	JOIN product p ON p.product_id = sc.product_id`

func scanLines(rows pgx.Rows) ([]Line, error) {
	defer rows.Close()
	var out []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ItemID, &l.CartID, &l.ProductID, &l.Name, &l.Attributes, &l.Quantity,
			&l.Price, &l.DiscountedPrice, &l.Image, &l.BuyNow, &l.AddedOn); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Add is a single upsert so concurrent adds of the same line never duplicate it.
func (r *PGRepo) Add(ctx context.Context, cartID string, productID int, attributes string, qty int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO shopping_cart (cart_id, product_id, attributes, quantity, buy_now, added_on)
		SELECT $1, p.product_id, $3, $4, true, NOW()
		FROM product p WHERE p.product_id = $2
		ON CONFLICT (cart_id, product_id, attributes)
		DO UPDATE SET quantity = shopping_cart.quantity + EXCLUDED.quantity, buy_now = true
		RETURNING item_id
	`, cartID, productID, attributes, qty).Scan(&id)
	if db.IsNoRows(err) {
		return 0, ErrUnknownProduct
	}
	if err != nil {
		return 0, fmt.Errorf("upsert cart line: %w", err)
	}
	return id, nil
}

func (r *PGRepo) Line(ctx context.Context, itemID int) (*Line, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, lineSelect+` WHERE sc.item_id = $1`, itemID)
	if err != nil {
		return nil, err
	}
	lines, err := scanLines(rows)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNotFound
	}
	return &lines[0], nil
}

func (r *PGRepo) Lines(ctx context.Context, cartID string, buyNow bool) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, lineSelect+`
		WHERE sc.cart_id = $1 AND sc.buy_now = $2
		ORDER BY sc.item_id`, cartID, buyNow)
	if err != nil {
		return nil, err
	}
	return scanLines(rows)
}

// LockCheckout returns the buy-now lines of a cart locked until the
// surrounding transaction ends. r must be built on a pgx.Tx.
func (r *PGRepo) LockCheckout(ctx context.Context, cartID string) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, lineSelect+`
		WHERE sc.cart_id = $1 AND sc.buy_now = true
		ORDER BY sc.item_id
		FOR UPDATE OF sc`, cartID)
	if err != nil {
		return nil, err
	}
	return scanLines(rows)
}

// RemoveItems deletes the given lines.
func (r *PGRepo) RemoveItems(ctx context.Context, itemIDs []int) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM shopping_cart WHERE item_id = ANY($1)`, itemIDs)
	return err
}

func (r *PGRepo) SetQuantity(ctx context.Context, itemID, qty int) error {
	return r.exec(ctx, `UPDATE shopping_cart SET quantity = $2 WHERE item_id = $1`, itemID, qty)
}

func (r *PGRepo) SetBuyNow(ctx context.Context, itemID int, buyNow bool) error {
	return r.exec(ctx, `UPDATE shopping_cart SET buy_now = $2 WHERE item_id = $1`, itemID, buyNow)
}

func (r *PGRepo) exec(ctx context.Context, sql string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Remove(ctx context.Context, itemID int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_cart WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGRepo) Empty(ctx context.Context, cartID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_cart WHERE cart_id = $1`, cartID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
