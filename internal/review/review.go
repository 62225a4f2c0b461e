// Package review stores product reviews and summarizes their ratings.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeMC777/shop-api/internal/db"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicate       = errors.New("customer already reviewed this product")
)

type Review struct {
	ReviewID   int       `json:"review_id"`
	CustomerID int       `json:"customer_id"`
	Name       string    `json:"name"`
	ProductID  int       `json:"product_id"`
	Review     string    `json:"review"`
	Rating     int       `json:"rating"`
	CreatedOn  time.Time `json:"created_on"`
}

// Summary aggregates the ratings of a product.
type Summary struct {
	AverageRating float64 `json:"averageRating"`
	TotalCount    int     `json:"totalCount"`
}

type List struct {
	Rows    []Review `json:"rows"`
	Summary Summary  `json:"summary"`
}

// CreateRequest payload of a new review.
// swagger:model CreateReviewRequest
type CreateRequest struct {
	Review string `json:"review" binding:"required" example:"Fits perfectly"`
	Rating int    `json:"rating" binding:"required" example:"5"`
}

type Repository interface {
	ProductExists(ctx context.Context, productID int) (bool, error)
	ByProduct(ctx context.Context, productID int) ([]Review, error)
	Create(ctx context.Context, r *Review) error
}

type PGRepo struct{ db db.Querier }

func NewPGRepo(q db.Querier) *PGRepo { return &PGRepo{db: q} }

func (r *PGRepo) ProductExists(ctx context.Context, productID int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product WHERE product_id = $1)`, productID).Scan(&ok)
	return ok, err
}

func (r *PGRepo) ByProduct(ctx context.Context, productID int) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT rv.review_id, rv.customer_id, c.name, rv.product_id, rv.review, rv.rating, rv.created_on
		FROM review rv
		JOIN customer c ON c.customer_id = rv.customer_id
		WHERE rv.product_id = $1
		ORDER BY rv.created_on DESC, rv.review_id DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ReviewID, &rv.CustomerID, &rv.Name, &rv.ProductID,
			&rv.Review, &rv.Rating, &rv.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, rv *Review) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO review (customer_id, product_id, review, rating, created_on)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING review_id, created_on
	`, rv.CustomerID, rv.ProductID, rv.Review, rv.Rating).Scan(&rv.ReviewID, &rv.CreatedOn)
	if db.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}
