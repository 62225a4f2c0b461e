// Package shipping reads shipping regions and their delivery methods.
package shipping

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/shop-api/internal/db"
)

var ErrNotFound = errors.New("shipping not found")

type Region struct {
	ShippingRegionID int    `json:"shipping_region_id"`
	ShippingRegion   string `json:"shipping_region"`
}

type Method struct {
	ShippingID       int             `json:"shipping_id"`
	ShippingType     string          `json:"shipping_type"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	ShippingRegionID int             `json:"shipping_region_id"`
}

type Repository interface {
	Regions(ctx context.Context) ([]Region, error)
	Region(ctx context.Context, id int) (*Region, error)
	Methods(ctx context.Context, regionID int) ([]Method, error)
	Method(ctx context.Context, id int) (*Method, error)
}

type PGRepo struct{ db db.Querier }

func NewPGRepo(q db.Querier) *PGRepo { return &PGRepo{db: q} }

func (r *PGRepo) Regions(ctx context.Context) ([]Region, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT shipping_region_id, shipping_region
		FROM shipping_region ORDER BY shipping_region_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Region
	for rows.Next() {
		var reg Region
		if err := rows.Scan(&reg.ShippingRegionID, &reg.ShippingRegion); err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *PGRepo) Region(ctx context.Context, id int) (*Region, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var reg Region
	err := r.db.QueryRow(ctx, `
		SELECT shipping_region_id, shipping_region
		FROM shipping_region WHERE shipping_region_id = $1
	`, id).Scan(&reg.ShippingRegionID, &reg.ShippingRegion)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *PGRepo) Methods(ctx context.Context, regionID int) ([]Method, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT shipping_id, shipping_type, shipping_cost, shipping_region_id
		FROM shipping WHERE shipping_region_id = $1
		ORDER BY shipping_id
	`, regionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Method
	for rows.Next() {
		var m Method
		if err := rows.Scan(&m.ShippingID, &m.ShippingType, &m.ShippingCost, &m.ShippingRegionID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) Method(ctx context.Context, id int) (*Method, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var m Method
	err := r.db.QueryRow(ctx, `
		SELECT shipping_id, shipping_type, shipping_cost, shipping_region_id
		FROM shipping WHERE shipping_id = $1
	`, id).Scan(&m.ShippingID, &m.ShippingType, &m.ShippingCost, &m.ShippingRegionID)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
