package memstore

import (
	"context"
	"strings"

	"github.com/MikeMC777/shop-api/internal/customer"
)

type customerRepo struct{ s *Store }

func (s *Store) Customers() customer.Repository { return customerRepo{s} }

func (r customerRepo) emailOwner(email string) (int, bool) {
	for id, c := range r.s.d.customers {
		if strings.EqualFold(c.Email, email) {
			return id, true
		}
	}
	return 0, false
}

func (r customerRepo) Create(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fault("insert_customer"); err != nil {
		return err
	}
	if _, taken := r.emailOwner(c.Email); taken {
		return customer.ErrEmailTaken
	}
	c.CustomerID = r.s.d.next("customer")
	c.ShippingRegionID = 1
	r.s.d.customers[c.CustomerID] = *c
	return nil
}

func (r customerRepo) GetByID(_ context.Context, id int) (*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.d.customers[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return &c, nil
}

func (r customerRepo) GetByEmail(_ context.Context, email string) (*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.emailOwner(email)
	if !ok {
		return nil, customer.ErrNotFound
	}
	c := r.s.d.customers[id]
	return &c, nil
}

func (r customerRepo) Update(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.customers[c.CustomerID]; !ok {
		return customer.ErrNotFound
	}
	if owner, taken := r.emailOwner(c.Email); taken && owner != c.CustomerID {
		return customer.ErrEmailTaken
	}
	r.s.d.customers[c.CustomerID] = *c
	return nil
}
