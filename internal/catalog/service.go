package catalog

import (
	"context"
	"errors"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/paging"
)

// ListParams are the query options shared by product list views.
type ListParams struct {
	Page              paging.Page
	DescriptionLength int
}

func (p ListParams) descLen() int {
	if p.DescriptionLength <= 0 {
		return DefaultDescriptionLength
	}
	return p.DescriptionLength
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// notFound translates a lookup failure of the named entity.
func notFound(err error, what string) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(what + " not found")
	}
	return apperr.Internal("load "+what, err)
}

func (s *Service) Departments(ctx context.Context) ([]Department, error) {
	out, err := s.repo.Departments(ctx)
	if err != nil {
		return nil, apperr.Internal("list departments", err)
	}
	return out, nil
}

func (s *Service) Department(ctx context.Context, id int) (*Department, error) {
	d, err := s.repo.Department(ctx, id)
	if err != nil {
		return nil, notFound(err, "department")
	}
	return d, nil
}

func (s *Service) Categories(ctx context.Context, p paging.Page, orderBy string) (paging.Result[Category], error) {
	rows, total, err := s.repo.Categories(ctx, CategoryFilter{OrderBy: orderBy, Page: p})
	if err != nil {
		return paging.Result[Category]{}, apperr.Internal("list categories", err)
	}
	return paging.NewResult(p, rows, total), nil
}

func (s *Service) Category(ctx context.Context, id int) (*Category, error) {
	c, err := s.repo.Category(ctx, id)
	if err != nil {
		return nil, notFound(err, "category")
	}
	return c, nil
}

func (s *Service) CategoriesInProduct(ctx context.Context, productID int) ([]Category, error) {
	if _, err := s.repo.Product(ctx, productID); err != nil {
		return nil, notFound(err, "product")
	}
	rows, _, err := s.repo.Categories(ctx, CategoryFilter{ProductID: productID})
	if err != nil {
		return nil, apperr.Internal("list product categories", err)
	}
	return rows, nil
}

func (s *Service) CategoriesInDepartment(ctx context.Context, departmentID int) ([]Category, error) {
	if _, err := s.repo.Department(ctx, departmentID); err != nil {
		return nil, notFound(err, "department")
	}
	rows, _, err := s.repo.Categories(ctx, CategoryFilter{DepartmentID: departmentID})
	if err != nil {
		return nil, apperr.Internal("list department categories", err)
	}
	return rows, nil
}

func (s *Service) Attributes(ctx context.Context) ([]Attribute, error) {
	out, err := s.repo.Attributes(ctx)
	if err != nil {
		return nil, apperr.Internal("list attributes", err)
	}
	return out, nil
}

func (s *Service) Attribute(ctx context.Context, id int) (*Attribute, error) {
	a, err := s.repo.Attribute(ctx, id)
	if err != nil {
		return nil, notFound(err, "attribute")
	}
	return a, nil
}

func (s *Service) AttributeValues(ctx context.Context, attributeID int) ([]AttributeValue, error) {
	if _, err := s.repo.Attribute(ctx, attributeID); err != nil {
		return nil, notFound(err, "attribute")
	}
	out, err := s.repo.AttributeValues(ctx, attributeID)
	if err != nil {
		return nil, apperr.Internal("list attribute values", err)
	}
	return out, nil
}

func (s *Service) AttributesInProduct(ctx context.Context, productID int) ([]ProductAttribute, error) {
	if _, err := s.repo.Product(ctx, productID); err != nil {
		return nil, notFound(err, "product")
	}
	out, err := s.repo.ProductAttributes(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("list product attributes", err)
	}
	return out, nil
}

func (s *Service) list(ctx context.Context, f ProductFilter, p ListParams) (paging.Result[Product], error) {
	f.Page = p.Page
	rows, total, err := s.repo.Products(ctx, f)
	if err != nil {
		return paging.Result[Product]{}, apperr.Internal("list products", err)
	}
	n := p.descLen()
	for i := range rows {
		rows[i].Description = Truncate(rows[i].Description, n)
	}
	return paging.NewResult(p.Page, rows, total), nil
}

func (s *Service) Products(ctx context.Context, p ListParams) (paging.Result[Product], error) {
	return s.list(ctx, ProductFilter{}, p)
}

// Search matches every term (allWords) or any term against product names.
func (s *Service) Search(ctx context.Context, query string, allWords bool, p ListParams) (paging.Result[Product], error) {
	terms := SplitTerms(query)
	if len(terms) == 0 {
		return paging.Result[Product]{}, apperr.Validation("query_string", "query_string is required")
	}
	return s.list(ctx, ProductFilter{Terms: terms, MatchAll: allWords}, p)
}

func (s *Service) ProductsInCategory(ctx context.Context, categoryID int, p ListParams) (paging.Result[Product], error) {
	if _, err := s.repo.Category(ctx, categoryID); err != nil {
		return paging.Result[Product]{}, notFound(err, "category")
	}
	return s.list(ctx, ProductFilter{CategoryIDs: []int{categoryID}}, p)
}

// ProductsInDepartment gathers the products of every category in the department.
func (s *Service) ProductsInDepartment(ctx context.Context, departmentID int, p ListParams) (paging.Result[Product], error) {
	cats, err := s.CategoriesInDepartment(ctx, departmentID)
	if err != nil {
		return paging.Result[Product]{}, err
	}
	if len(cats) == 0 {
		return paging.NewResult[Product](p.Page, nil, 0), nil
	}
	ids := make([]int, len(cats))
	for i, c := range cats {
		ids[i] = c.CategoryID
	}
	return s.list(ctx, ProductFilter{CategoryIDs: ids}, p)
}

// Product returns a single product with its full description.
func (s *Service) Product(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.Product(ctx, id)
	if err != nil {
		return nil, notFound(err, "product")
	}
	return p, nil
}

func (s *Service) ProductDetails(ctx context.Context, id int) (*ProductDetails, error) {
	p, err := s.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	attrs, err := s.repo.ProductAttributes(ctx, id)
	if err != nil {
		return nil, apperr.Internal("list product attributes", err)
	}
	if attrs == nil {
		attrs = []ProductAttribute{}
	}
	return &ProductDetails{Product: *p, Attributes: attrs}, nil
}

func (s *Service) ProductLocations(ctx context.Context, id int) ([]Location, error) {
	if _, err := s.Product(ctx, id); err != nil {
		return nil, err
	}
	out, err := s.repo.ProductLocations(ctx, id)
	if err != nil {
		return nil, apperr.Internal("list product locations", err)
	}
	return out, nil
}
