package review

import (
	"context"
	"errors"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/MikeMC777/shop-api/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) mustExist(ctx context.Context, productID int) error {
	ok, err := s.repo.ProductExists(ctx, productID)
	if err != nil {
		return apperr.Internal("load product", err)
	}
	if !ok {
		return apperr.NotFound("product not found")
	}
	return nil
}

func (s *Service) ForProduct(ctx context.Context, productID int) (*List, error) {
	if err := s.mustExist(ctx, productID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("list reviews", err)
	}
	if rows == nil {
		rows = []Review{}
	}
	return &List{Rows: rows, Summary: Summarize(rows)}, nil
}

// Summarize averages ratings to two decimals; no reviews average 0.
func Summarize(rows []Review) Summary {
	sum := Summary{TotalCount: len(rows)}
	if len(rows) == 0 {
		return sum
	}
	data := make(stats.Float64Data, len(rows))
	for i, r := range rows {
		data[i] = float64(r.Rating)
	}
	mean, err := data.Mean()
	if err != nil {
		return sum
	}
	if rounded, err := stats.Round(mean, 2); err == nil {
		sum.AverageRating = rounded
	}
	return sum
}

func (s *Service) Create(ctx context.Context, customerID, productID int, in CreateRequest) (*Review, error) {
	text := strings.TrimSpace(in.Review)
	if text == "" {
		return nil, apperr.Validation("review", "review is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validation("rating", "rating must be between 1 and 5")
	}
	if err := s.mustExist(ctx, productID); err != nil {
		return nil, err
	}
	rv := &Review{CustomerID: customerID, ProductID: productID, Review: text, Rating: in.Rating}
	if err := s.repo.Create(ctx, rv); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, apperr.Conflict("product_id", "you already reviewed this product")
		}
		return nil, apperr.Internal("create review", err)
	}
	return rv, nil
}
