package memstore

import (
	"context"
	"sort"

	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/order"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

type orderStore struct{ s *Store }

func (s *Store) Orders() order.Store { return orderStore{s} }

// InTx holds the store lock for the whole unit of work and restores a
// snapshot when fn fails.
func (o orderStore) InTx(_ context.Context, fn func(order.Tx) error) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	snapshot := o.s.d.clone()
	if err := fn(memTx{o.s}); err != nil {
		o.s.d = snapshot
		return err
	}
	return nil
}

func (o orderStore) Order(_ context.Context, id int) (*order.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	ord, ok := o.s.d.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return &ord, nil
}

func (o orderStore) Details(_ context.Context, orderID int) ([]order.Detail, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	return append([]order.Detail(nil), o.s.d.details[orderID]...), nil
}

func (o orderStore) ByCustomer(_ context.Context, customerID int) ([]order.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var out []order.Order
	for _, ord := range o.s.d.orders {
		if ord.CustomerID == customerID {
			out = append(out, ord)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedOn.Equal(out[j].CreatedOn) {
			return out[i].CreatedOn.After(out[j].CreatedOn)
		}
		return out[i].OrderID > out[j].OrderID
	})
	return out, nil
}

func (o orderStore) UpdateStatus(_ context.Context, id int, from, to order.Status) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	ord, ok := o.s.d.orders[id]
	if !ok || ord.Status != from {
		return order.ErrStatusChanged
	}
	ord.Status = to
	if to == order.StatusShipped {
		now := o.s.now()
		ord.ShippedOn = &now
	}
	o.s.d.orders[id] = ord
	return nil
}

// memTx runs with the store lock already held.
type memTx struct{ s *Store }

func (t memTx) CheckoutLines(_ context.Context, cartID string) ([]cart.Line, error) {
	if err := t.s.fault("checkout_lines"); err != nil {
		return nil, err
	}
	return t.s.d.lines(cartID, true), nil
}

func (t memTx) Tax(_ context.Context, id int) (*tax.Tax, error) { return t.s.d.tax(id) }

func (t memTx) Shipping(_ context.Context, id int) (*shipping.Method, error) {
	return t.s.d.method(id)
}

func (t memTx) InsertOrder(_ context.Context, o *order.Order) error {
	if err := t.s.fault("insert_order"); err != nil {
		return err
	}
	o.OrderID = t.s.d.next("orders")
	o.CreatedOn = t.s.now()
	t.s.d.orders[o.OrderID] = *o
	return nil
}

func (t memTx) InsertDetails(_ context.Context, orderID int, details []order.Detail) error {
	for _, d := range details {
		if err := t.s.fault("insert_details"); err != nil {
			return err
		}
		d.ItemID = t.s.d.next("order_detail")
		d.OrderID = orderID
		t.s.d.details[orderID] = append(t.s.d.details[orderID], d)
	}
	return nil
}

func (t memTx) ClearLines(_ context.Context, itemIDs []int) error {
	if err := t.s.fault("clear_lines"); err != nil {
		return err
	}
	for _, id := range itemIDs {
		delete(t.s.d.cart, id)
	}
	return nil
}
