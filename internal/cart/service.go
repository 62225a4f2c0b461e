// Package cart keeps anonymous shopping carts keyed by a generated cart id.
package cart

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/shop-api/internal/apperr"
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, newID: uuid.NewString}
}

func (s *Service) NewCartID() IDResponse { return IDResponse{CartID: s.newID()} }

func lineErr(err error, op string) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("cart item not found")
	}
	return apperr.Internal(op, err)
}

// Add merges the item into the cart and returns the resulting line.
func (s *Service) Add(ctx context.Context, in AddRequest) (*Line, error) {
	cartID := strings.TrimSpace(in.CartID)
	if cartID == "" {
		return nil, apperr.Validation("cart_id", "cart_id is required")
	}
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty <= 0 {
		return nil, apperr.Validation("quantity", "quantity must be greater than 0")
	}
	if in.ProductID <= 0 {
		return nil, apperr.Validation("product_id", "product_id must be a positive integer")
	}
	held, err := s.held(ctx, cartID, in.ProductID, in.Attributes)
	if err != nil {
		return nil, err
	}
	if held+qty > MaxQuantity {
		return nil, tooMany()
	}

	id, err := s.repo.Add(ctx, cartID, in.ProductID, in.Attributes, qty)
	if errors.Is(err, ErrUnknownProduct) {
		return nil, apperr.Validation("product_id", "product does not exist")
	}
	if err != nil {
		return nil, apperr.Internal("add cart item", err)
	}
	return s.line(ctx, id)
}

func tooMany() error {
	return apperr.Validation("quantity", "quantity cannot exceed "+strconv.Itoa(MaxQuantity))
}

// held is the quantity already in the line an add would merge into.
func (s *Service) held(ctx context.Context, cartID string, productID int, attributes string) (int, error) {
	for _, buyNow := range []bool{true, false} {
		rows, err := s.repo.Lines(ctx, cartID, buyNow)
		if err != nil {
			return 0, apperr.Internal("list cart items", err)
		}
		for _, l := range rows {
			if l.ProductID == productID && l.Attributes == attributes {
				return l.Quantity, nil
			}
		}
	}
	return 0, nil
}

func (s *Service) line(ctx context.Context, itemID int) (*Line, error) {
	l, err := s.repo.Line(ctx, itemID)
	if err != nil {
		return nil, lineErr(err, "load cart item")
	}
	l.Subtotal = l.LineTotal()
	return l, nil
}

func (s *Service) lines(ctx context.Context, cartID string, buyNow bool) ([]Line, error) {
	rows, err := s.repo.Lines(ctx, cartID, buyNow)
	if err != nil {
		return nil, apperr.Internal("list cart items", err)
	}
	if rows == nil {
		rows = []Line{}
	}
	for i := range rows {
		rows[i].Subtotal = rows[i].LineTotal()
	}
	return rows, nil
}

// Get returns the buy-now lines. An unknown cart id is simply empty.
func (s *Service) Get(ctx context.Context, cartID string) (*Cart, error) {
	rows, err := s.lines(ctx, cartID, true)
	if err != nil {
		return nil, err
	}
	return &Cart{Rows: rows, TotalAmount: Total(rows)}, nil
}

func (s *Service) Saved(ctx context.Context, cartID string) ([]Line, error) {
	return s.lines(ctx, cartID, false)
}

func (s *Service) Total(ctx context.Context, cartID string) (Amount, error) {
	rows, err := s.lines(ctx, cartID, true)
	if err != nil {
		return Amount{}, err
	}
	return Amount{TotalAmount: Total(rows)}, nil
}

func (s *Service) Update(ctx context.Context, itemID, qty int) (*Line, error) {
	if qty <= 0 {
		return nil, apperr.Validation("quantity", "quantity must be greater than 0")
	}
	if qty > MaxQuantity {
		return nil, tooMany()
	}
	if err := s.repo.SetQuantity(ctx, itemID, qty); err != nil {
		return nil, lineErr(err, "update cart item")
	}
	return s.line(ctx, itemID)
}

// Remove is idempotent; a missing item reports zero deletions.
func (s *Service) Remove(ctx context.Context, itemID int) (Deleted, error) {
	n, err := s.repo.Remove(ctx, itemID)
	if err != nil {
		return Deleted{}, apperr.Internal("remove cart item", err)
	}
	return Deleted{Deleted: n}, nil
}

func (s *Service) Empty(ctx context.Context, cartID string) (Deleted, error) {
	n, err := s.repo.Empty(ctx, cartID)
	if err != nil {
		return Deleted{}, apperr.Internal("empty cart", err)
	}
	return Deleted{Deleted: n}, nil
}

func (s *Service) SaveForLater(ctx context.Context, itemID int) (*Line, error) {
	return s.setBuyNow(ctx, itemID, false)
}

func (s *Service) MoveToCart(ctx context.Context, itemID int) (*Line, error) {
	return s.setBuyNow(ctx, itemID, true)
}

func (s *Service) setBuyNow(ctx context.Context, itemID int, buyNow bool) (*Line, error) {
	if err := s.repo.SetBuyNow(ctx, itemID, buyNow); err != nil {
		return nil, lineErr(err, "move cart item")
	}
	return s.line(ctx, itemID)
}
