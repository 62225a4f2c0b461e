package memstore

import (
	"context"

	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

func (d *data) tax(id int) (*tax.Tax, error) {
	t, ok := d.taxes[id]
	if !ok {
		return nil, tax.ErrNotFound
	}
	return &t, nil
}

func (d *data) method(id int) (*shipping.Method, error) {
	m, ok := d.methods[id]
	if !ok {
		return nil, shipping.ErrNotFound
	}
	return &m, nil
}

type taxRepo struct{ s *Store }

func (s *Store) Taxes() tax.Repository { return taxRepo{s} }

func (r taxRepo) List(context.Context) ([]tax.Tax, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []tax.Tax
	for _, id := range sortedKeys(r.s.d.taxes) {
		out = append(out, r.s.d.taxes[id])
	}
	return out, nil
}

func (r taxRepo) Get(_ context.Context, id int) (*tax.Tax, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.tax(id)
}

type shippingRepo struct{ s *Store }

func (s *Store) Shipping() shipping.Repository { return shippingRepo{s} }

func (r shippingRepo) Regions(context.Context) ([]shipping.Region, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []shipping.Region
	for _, id := range sortedKeys(r.s.d.regions) {
		out = append(out, r.s.d.regions[id])
	}
	return out, nil
}

func (r shippingRepo) Region(_ context.Context, id int) (*shipping.Region, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reg, ok := r.s.d.regions[id]
	if !ok {
		return nil, shipping.ErrNotFound
	}
	return &reg, nil
}

func (r shippingRepo) Methods(_ context.Context, regionID int) ([]shipping.Method, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []shipping.Method
	for _, id := range sortedKeys(r.s.d.methods) {
		if m := r.s.d.methods[id]; m.ShippingRegionID == regionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r shippingRepo) Method(_ context.Context, id int) (*shipping.Method, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.method(id)
}
