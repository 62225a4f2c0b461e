// Package order turns a cart into an order and tracks its status.
package order

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/audit"
	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/idempotency"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

type Service struct {
	store Store
	guard idempotency.Guard
	audit audit.Recorder
	log   *zap.Logger
}

func NewService(store Store, guard idempotency.Guard, rec audit.Recorder, log *zap.Logger) *Service {
	if guard == nil {
		guard = idempotency.Nop{}
	}
	if rec == nil {
		rec = audit.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, guard: guard, audit: rec, log: log}
}

// Create checks out the buy-now lines of a cart in one transaction.
func (s *Service) Create(ctx context.Context, in CreateInput) (Created, error) {
	in.CartID = strings.TrimSpace(in.CartID)
	switch {
	case in.CartID == "":
		return Created{}, apperr.Validation("cart_id", "cart_id is required")
	case in.ShippingID <= 0:
		return Created{}, apperr.Validation("shipping_id", "shipping_id must be a positive integer")
	case in.TaxID <= 0:
		return Created{}, apperr.Validation("tax_id", "tax_id must be a positive integer")
	}

	key := in.IdempotencyKey
	if key != "" {
		key = strconv.Itoa(in.CustomerID) + ":" + key
		id, done, err := s.guard.Begin(ctx, key)
		switch {
		case errors.Is(err, idempotency.ErrInProgress):
			return Created{}, apperr.Conflict("Idempotency-Key", "a request with this key is still being processed")
		case err != nil:
			// the guard is an optimization; carry on without it
			s.log.Warn("idempotency guard unavailable", zap.Error(err))
			key = ""
		case done:
			return Created{OrderID: id}, nil
		}
	}

	var o *Order
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		o, err = checkout(ctx, tx, in)
		return err
	})
	if err != nil {
		if key != "" {
			if rerr := s.guard.Release(ctx, key); rerr != nil {
				s.log.Warn("release idempotency key", zap.Error(rerr))
			}
		}
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return Created{}, ae
		}
		return Created{}, apperr.Internal("create order", err)
	}

	if key != "" {
		if err := s.guard.Complete(ctx, key, o.OrderID); err != nil {
			// a key stuck in pending would answer 409 to every retry
			s.log.Warn("complete idempotency key", zap.Error(err))
			if rerr := s.guard.Release(ctx, key); rerr != nil {
				s.log.Warn("release idempotency key", zap.Error(rerr))
			}
		}
	}
	s.record(ctx, "create", o, checkoutData(o))
	return Created{OrderID: o.OrderID}, nil
}

func checkout(ctx context.Context, tx Tx, in CreateInput) (*Order, error) {
	lines, err := tx.CheckoutLines(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperr.Validation("cart_id", "empty cart")
	}
	t, err := tx.Tax(ctx, in.TaxID)
	if errors.Is(err, tax.ErrNotFound) {
		return nil, apperr.Validation("tax_id", "unknown tax")
	}
	if err != nil {
		return nil, err
	}
	m, err := tx.Shipping(ctx, in.ShippingID)
	if errors.Is(err, shipping.ErrNotFound) {
		return nil, apperr.Validation("shipping_id", "unknown shipping method")
	}
	if err != nil {
		return nil, err
	}

	subtotal := cart.Total(lines)
	taxAmount := t.Amount(subtotal)
	o := &Order{
		CustomerID:   in.CustomerID,
		CartID:       in.CartID,
		ShippingID:   in.ShippingID,
		TaxID:        in.TaxID,
		TotalAmount:  subtotal.Add(taxAmount).Add(m.ShippingCost),
		Status:       StatusPlaced,
		TaxType:      t.TaxType,
		TaxAmount:    taxAmount,
		ShippingType: m.ShippingType,
		ShippingCost: m.ShippingCost,
	}
	if err := tx.InsertOrder(ctx, o); err != nil {
		return nil, err
	}

	details := make([]Detail, len(lines))
	ids := make([]int, len(lines))
	for i, l := range lines {
		details[i] = Detail{
			OrderID:         o.OrderID,
			ProductID:       l.ProductID,
			ProductName:     l.Name,
			Attributes:      l.Attributes,
			Quantity:        l.Quantity,
			UnitPrice:       l.Price,
			DiscountedPrice: l.DiscountedPrice,
			UnitCost:        l.UnitPrice(),
		}
		ids[i] = l.ItemID
	}
	if err := tx.InsertDetails(ctx, o.OrderID, details); err != nil {
		return nil, err
	}
	if err := tx.ClearLines(ctx, ids); err != nil {
		return nil, err
	}
	return o, nil
}

// CustomerOrders lists the order headers of a customer, newest first.
func (s *Service) CustomerOrders(ctx context.Context, customerID int) ([]Order, error) {
	out, err := s.store.ByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperr.Internal("list orders", err)
	}
	if out == nil {
		out = []Order{}
	}
	return out, nil
}

// owned loads an order; another customer's order looks missing.
func (s *Service) owned(ctx context.Context, id, customerID int) (*Order, error) {
	o, err := s.store.Order(ctx, id)
	if errors.Is(err, ErrNotFound) || (err == nil && o.CustomerID != customerID) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Internal("load order", err)
	}
	return o, nil
}

func (s *Service) ShortDetail(ctx context.Context, id, customerID int) (*Order, error) {
	return s.owned(ctx, id, customerID)
}

// Summary returns the order with its frozen lines. Tax and shipping come
// from the order row, never from the current pricing tables.
func (s *Service) Summary(ctx context.Context, id, customerID int) (*Summary, error) {
	o, err := s.owned(ctx, id, customerID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.Details(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load order lines", err)
	}
	if rows == nil {
		rows = []Detail{}
	}
	sum := &Summary{Order: *o, Rows: rows}
	for i := range rows {
		rows[i].Subtotal = rows[i].lineTotal()
		sum.Subtotal = sum.Subtotal.Add(rows[i].Subtotal)
	}
	return sum, nil
}

// UpdateStatus moves an order forward along its lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id, customerID int, to Status) (*Order, error) {
	if !to.Valid() {
		return nil, apperr.Validation("status", "unknown order status")
	}
	o, err := s.owned(ctx, id, customerID)
	if err != nil {
		return nil, err
	}
	if !CanMove(o.Status, to) {
		return nil, apperr.Validation("status", "cannot move order from "+string(o.Status)+" to "+string(to))
	}
	err = s.store.UpdateStatus(ctx, id, o.Status, to)
	if errors.Is(err, ErrStatusChanged) {
		return nil, apperr.Conflict("status", "order status was changed by another request")
	}
	if err != nil {
		return nil, apperr.Internal("update order status", err)
	}
	prev := o.Status
	if o, err = s.store.Order(ctx, id); err != nil {
		return nil, apperr.Internal("reload order", err)
	}
	s.record(ctx, "status", o, map[string]any{"from": string(prev), "to": string(to)})
	return o, nil
}

func checkoutData(o *Order) map[string]any {
	return map[string]any{"total_amount": o.TotalAmount.String(), "cart_id": o.CartID}
}

func (s *Service) record(ctx context.Context, action string, o *Order, data map[string]any) {
	err := s.audit.Record(ctx, audit.Entry{
		Service:  "order",
		Action:   action,
		EntityID: strconv.Itoa(o.OrderID),
		ActorID:  o.CustomerID,
		Data:     data,
	})
	if err != nil {
		s.log.Warn("audit record failed", zap.String("action", action), zap.Int("order_id", o.OrderID), zap.Error(err))
	}
}
