package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/memstore"
	"github.com/MikeMC777/shop-api/internal/paging"
)

func newService() *catalog.Service {
	return catalog.NewService(memstore.Demo().Catalog())
}

func TestProducts_PaginatesAndTruncates(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	res, err := svc.Products(ctx, catalog.ListParams{Page: paging.New(1, 3), DescriptionLength: 10})
	require.NoError(t, err)
	assert.Equal(t, paging.Meta{CurrentPage: 1, CurrentPageSize: 3, TotalPages: 2, TotalRecords: 4}, res.PaginationMeta)
	for _, p := range res.Rows {
		assert.True(t, strings.HasSuffix(p.Description, "..."), p.Description)
	}

	res, err = svc.Products(ctx, catalog.ListParams{Page: paging.New(2, 3)})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 4, res.Rows[0].ProductID)

	full, err := svc.Product(ctx, 2)
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(full.Description, "..."))
}

func TestSearch(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	p := catalog.ListParams{Page: paging.New(1, 20)}

	_, err := svc.Search(ctx, " , ", false, p)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	anyTerm, err := svc.Search(ctx, "arc, coat", false, p)
	require.NoError(t, err)
	assert.Equal(t, 2, anyTerm.PaginationMeta.TotalRecords)

	all, err := svc.Search(ctx, "coat arms", true, p)
	require.NoError(t, err)
	require.Len(t, all.Rows, 1)
	assert.Equal(t, "Coat of Arms", all.Rows[0].Name)
}

func TestProductsInDepartment_DistinctAcrossCategories(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	res, err := svc.ProductsInDepartment(ctx, 1, catalog.ListParams{Page: paging.New(1, 20)})
	require.NoError(t, err)
	assert.Equal(t, 4, res.PaginationMeta.TotalRecords)

	empty, err := svc.ProductsInDepartment(ctx, 3, catalog.ListParams{Page: paging.New(1, 20)})
	require.NoError(t, err)
	assert.Empty(t, empty.Rows)

	_, err = svc.ProductsInDepartment(ctx, 99, catalog.ListParams{Page: paging.New(1, 20)})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCategories(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	byName, err := svc.Categories(ctx, paging.New(1, 20), "name")
	require.NoError(t, err)
	require.Len(t, byName.Rows, 3)
	assert.Equal(t, "Animal", byName.Rows[0].Name)

	inProduct, err := svc.CategoriesInProduct(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, inProduct, 2)

	_, err = svc.Category(ctx, 42)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestAttributes(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	vals, err := svc.AttributeValues(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, vals, 3)

	_, err = svc.AttributeValues(ctx, 9)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	pa, err := svc.AttributesInProduct(ctx, 1)
	require.NoError(t, err)
	require.Len(t, pa, 5)
	assert.Equal(t, "Color", pa[0].AttributeName)

	det, err := svc.ProductDetails(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, det.Attributes)
	assert.Empty(t, det.Attributes)
}

func TestProductLocations(t *testing.T) {
	svc := newService()
	locs, err := svc.ProductLocations(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "Regional", locs[0].DepartmentName)
	assert.Equal(t, "Nature", locs[1].DepartmentName)
}
