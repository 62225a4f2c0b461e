package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/memstore"
	"github.com/MikeMC777/shop-api/internal/review"
)

func TestCreateAndList(t *testing.T) {
	st := memstore.Demo()
	svc := review.NewService(st.Reviews())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, 1, review.CreateRequest{Review: "Great shirt", Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, 1, review.CreateRequest{Review: "Ok", Rating: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 3, 1, review.CreateRequest{Review: "Fine", Rating: 4})
	require.NoError(t, err)

	list, err := svc.ForProduct(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list.Rows, 3)
	assert.Equal(t, 3, list.Summary.TotalCount)
	assert.InDelta(t, 3.67, list.Summary.AverageRating, 0.001)
	assert.Equal(t, "Fine", list.Rows[0].Review)
}

func TestCreate_Rules(t *testing.T) {
	st := memstore.Demo()
	svc := review.NewService(st.Reviews())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, 1, review.CreateRequest{Review: "x", Rating: 0})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = svc.Create(ctx, 1, 1, review.CreateRequest{Review: "x", Rating: 6})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = svc.Create(ctx, 1, 1, review.CreateRequest{Review: "   ", Rating: 3})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = svc.Create(ctx, 1, 999, review.CreateRequest{Review: "x", Rating: 3})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.Create(ctx, 1, 1, review.CreateRequest{Review: "first", Rating: 3})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, 1, review.CreateRequest{Review: "second", Rating: 4})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, 1, st.Counts()["review"])
}

func TestForProduct_Empty(t *testing.T) {
	st := memstore.Demo()
	svc := review.NewService(st.Reviews())

	list, err := svc.ForProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, list.Rows)
	assert.Zero(t, list.Summary.TotalCount)
	assert.Zero(t, list.Summary.AverageRating)

	_, err = svc.ForProduct(context.Background(), 999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
