package memstore

import (
	"context"
	"sort"

	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/paging"
)

type catalogRepo struct{ s *Store }

// Catalog returns a catalog.Repository view of the store.
func (s *Store) Catalog() catalog.Repository { return catalogRepo{s} }

func window[T any](rows []T, p paging.Page) []T {
	if p.Limit <= 0 {
		return rows
	}
	off := p.Offset()
	if off >= len(rows) {
		return nil
	}
	end := off + p.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[off:end]
}

func (r catalogRepo) Departments(context.Context) ([]catalog.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []catalog.Department
	for _, id := range sortedKeys(r.s.d.departments) {
		out = append(out, r.s.d.departments[id])
	}
	return out, nil
}

func (r catalogRepo) Department(_ context.Context, id int) (*catalog.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.d.departments[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &d, nil
}

func (r catalogRepo) inCategory(productID, categoryID int) bool {
	for _, c := range r.s.d.productCategory[productID] {
		if c == categoryID {
			return true
		}
	}
	return false
}

func (r catalogRepo) Categories(_ context.Context, f catalog.CategoryFilter) ([]catalog.Category, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []catalog.Category
	for _, id := range sortedKeys(r.s.d.categories) {
		c := r.s.d.categories[id]
		if f.DepartmentID > 0 && c.DepartmentID != f.DepartmentID {
			continue
		}
		if f.ProductID > 0 && !r.inCategory(f.ProductID, c.CategoryID) {
			continue
		}
		all = append(all, c)
	}
	if f.OrderBy == "name" {
		sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	}
	return window(all, f.Page), len(all), nil
}

func (r catalogRepo) Category(_ context.Context, id int) (*catalog.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.d.categories[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &c, nil
}

func (r catalogRepo) Attributes(context.Context) ([]catalog.Attribute, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []catalog.Attribute
	for _, id := range sortedKeys(r.s.d.attributes) {
		out = append(out, r.s.d.attributes[id])
	}
	return out, nil
}

func (r catalogRepo) Attribute(_ context.Context, id int) (*catalog.Attribute, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.d.attributes[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &a, nil
}

func (r catalogRepo) AttributeValues(_ context.Context, attributeID int) ([]catalog.AttributeValue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []catalog.AttributeValue
	for _, id := range sortedKeys(r.s.d.attrValues) {
		if v := r.s.d.attrValues[id]; v.AttributeID == attributeID {
			out = append(out, v.AttributeValue)
		}
	}
	return out, nil
}

func (r catalogRepo) ProductAttributes(_ context.Context, productID int) ([]catalog.ProductAttribute, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []catalog.ProductAttribute
	for _, vid := range r.s.d.productValues[productID] {
		v := r.s.d.attrValues[vid]
		out = append(out, catalog.ProductAttribute{
			AttributeName:    r.s.d.attributes[v.AttributeID].Name,
			AttributeValueID: v.AttributeValueID,
			AttributeValue:   v.Value,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AttributeName != out[j].AttributeName {
			return out[i].AttributeName < out[j].AttributeName
		}
		return out[i].AttributeValueID < out[j].AttributeValueID
	})
	return out, nil
}

func (r catalogRepo) Products(_ context.Context, f catalog.ProductFilter) ([]catalog.Product, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []catalog.Product
	for _, id := range sortedKeys(r.s.d.products) {
		p := r.s.d.products[id]
		if len(f.CategoryIDs) > 0 {
			hit := false
			for _, c := range f.CategoryIDs {
				if r.inCategory(id, c) {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		if !catalog.MatchName(p.Name, f.Terms, f.MatchAll) {
			continue
		}
		all = append(all, p)
	}
	return window(all, f.Page), len(all), nil
}

func (r catalogRepo) Product(_ context.Context, id int) (*catalog.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.d.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &p, nil
}

func (r catalogRepo) ProductLocations(_ context.Context, productID int) ([]catalog.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := append([]int(nil), r.s.d.productCategory[productID]...)
	sort.Ints(ids)
	var out []catalog.Location
	for _, cid := range ids {
		c := r.s.d.categories[cid]
		out = append(out, catalog.Location{
			CategoryID:     c.CategoryID,
			CategoryName:   c.Name,
			DepartmentID:   c.DepartmentID,
			DepartmentName: r.s.d.departments[c.DepartmentID].Name,
		})
	}
	return out, nil
}
