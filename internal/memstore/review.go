package memstore

import (
	"context"
	"sort"

	"github.com/MikeMC777/shop-api/internal/review"
)

type reviewRepo struct{ s *Store }

func (s *Store) Reviews() review.Repository { return reviewRepo{s} }

func (r reviewRepo) ProductExists(_ context.Context, productID int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.d.products[productID]
	return ok, nil
}

func (r reviewRepo) ByProduct(_ context.Context, productID int) ([]review.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []review.Review
	for _, rv := range r.s.d.reviews {
		if rv.ProductID == productID {
			rv.Name = r.s.d.customers[rv.CustomerID].Name
			out = append(out, rv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReviewID > out[j].ReviewID })
	return out, nil
}

func (r reviewRepo) Create(_ context.Context, rv *review.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.d.reviews {
		if existing.CustomerID == rv.CustomerID && existing.ProductID == rv.ProductID {
			return review.ErrDuplicate
		}
	}
	rv.ReviewID = r.s.d.next("review")
	rv.CreatedOn = r.s.now()
	r.s.d.reviews = append(r.s.d.reviews, *rv)
	return nil
}
