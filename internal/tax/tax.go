// Package tax reads the tax table used at checkout.
package tax

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/shop-api/internal/db"
)

var ErrNotFound = errors.New("tax not found")

type Tax struct {
	TaxID         int             `json:"tax_id"`
	TaxType       string          `json:"tax_type"`
	TaxPercentage decimal.Decimal `json:"tax_percentage"`
}

// Amount is the tax due on subtotal, rounded to cents.
func (t Tax) Amount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(t.TaxPercentage).Div(decimal.NewFromInt(100)).Round(2)
}

type Repository interface {
	List(ctx context.Context) ([]Tax, error)
	Get(ctx context.Context, id int) (*Tax, error)
}

type PGRepo struct{ db db.Querier }

func NewPGRepo(q db.Querier) *PGRepo { return &PGRepo{db: q} }

func (r *PGRepo) List(ctx context.Context) ([]Tax, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT tax_id, tax_type, tax_percentage FROM tax ORDER BY tax_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Tax
	for rows.Next() {
		var t Tax
		if err := rows.Scan(&t.TaxID, &t.TaxType, &t.TaxPercentage); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PGRepo) Get(ctx context.Context, id int) (*Tax, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var t Tax
	err := r.db.QueryRow(ctx, `SELECT tax_id, tax_type, tax_percentage FROM tax WHERE tax_id = $1`, id).
		Scan(&t.TaxID, &t.TaxType, &t.TaxPercentage)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
