package memstore

import (
	"context"

	"github.com/MikeMC777/shop-api/internal/cart"
)

type cartRepo struct{ s *Store }

func (s *Store) Carts() cart.Repository { return cartRepo{s} }

// line joins a cart row with its live product. Callers hold the lock.
func (d *data) line(row cartRow) cart.Line {
	p := d.products[row.ProductID]
	return cart.Line{
		ItemID:          row.ItemID,
		CartID:          row.CartID,
		ProductID:       row.ProductID,
		Name:            p.Name,
		Attributes:      row.Attributes,
		Quantity:        row.Quantity,
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		Image:           p.Thumbnail,
		BuyNow:          row.BuyNow,
		AddedOn:         row.AddedOn,
	}
}

func (d *data) lines(cartID string, buyNow bool) []cart.Line {
	var out []cart.Line
	for _, id := range sortedKeys(d.cart) {
		row := d.cart[id]
		if row.CartID == cartID && row.BuyNow == buyNow {
			out = append(out, d.line(row))
		}
	}
	return out
}

func (r cartRepo) Add(_ context.Context, cartID string, productID int, attributes string, qty int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.products[productID]; !ok {
		return 0, cart.ErrUnknownProduct
	}
	for id, row := range r.s.d.cart {
		if row.CartID == cartID && row.ProductID == productID && row.Attributes == attributes {
			row.Quantity += qty
			row.BuyNow = true
			r.s.d.cart[id] = row
			return id, nil
		}
	}
	id := r.s.d.next("shopping_cart")
	r.s.d.cart[id] = cartRow{
		ItemID: id, CartID: cartID, ProductID: productID, Attributes: attributes,
		Quantity: qty, BuyNow: true, AddedOn: r.s.now(),
	}
	return id, nil
}

func (r cartRepo) Line(_ context.Context, itemID int) (*cart.Line, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.d.cart[itemID]
	if !ok {
		return nil, cart.ErrNotFound
	}
	l := r.s.d.line(row)
	return &l, nil
}

func (r cartRepo) Lines(_ context.Context, cartID string, buyNow bool) ([]cart.Line, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.lines(cartID, buyNow), nil
}

func (r cartRepo) update(itemID int, fn func(*cartRow)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.d.cart[itemID]
	if !ok {
		return cart.ErrNotFound
	}
	fn(&row)
	r.s.d.cart[itemID] = row
	return nil
}

func (r cartRepo) SetQuantity(_ context.Context, itemID, qty int) error {
	return r.update(itemID, func(row *cartRow) { row.Quantity = qty })
}

func (r cartRepo) SetBuyNow(_ context.Context, itemID int, buyNow bool) error {
	return r.update(itemID, func(row *cartRow) { row.BuyNow = buyNow })
}

func (r cartRepo) Remove(_ context.Context, itemID int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.cart[itemID]; !ok {
		return 0, nil
	}
	delete(r.s.d.cart, itemID)
	return 1, nil
}

func (r cartRepo) Empty(_ context.Context, cartID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, row := range r.s.d.cart {
		if row.CartID == cartID {
			delete(r.s.d.cart, id)
			n++
		}
	}
	return n, nil
}
