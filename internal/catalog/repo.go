// Package catalog serves read-only queries over departments, categories,
// attributes and products.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/shop-api/internal/db"
)

var (
	ErrNotFound = errors.New("catalog entry not found")
)

type Repository interface {
	Departments(ctx context.Context) ([]Department, error)
	Department(ctx context.Context, id int) (*Department, error)
	Categories(ctx context.Context, f CategoryFilter) ([]Category, int, error)
	Category(ctx context.Context, id int) (*Category, error)
	Attributes(ctx context.Context) ([]Attribute, error)
	Attribute(ctx context.Context, id int) (*Attribute, error)
	AttributeValues(ctx context.Context, attributeID int) ([]AttributeValue, error)
	ProductAttributes(ctx context.Context, productID int) ([]ProductAttribute, error)
	Products(ctx context.Context, f ProductFilter) ([]Product, int, error)
	Product(ctx context.Context, id int) (*Product, error)
	ProductLocations(ctx context.Context, productID int) ([]Location, error)
}

type PGRepo struct{ db db.Querier }

func NewPGRepo(q db.Querier) *PGRepo { return &PGRepo{db: q} }

func (r *PGRepo) Departments(ctx context.Context) ([]Department, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT department_id, name, COALESCE(description, '')
		FROM department ORDER BY department_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.DepartmentID, &d.Name, &d.Description); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PGRepo) Department(ctx context.Context, id int) (*Department, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var d Department
	err := r.db.QueryRow(ctx, `
		SELECT department_id, name, COALESCE(description, '')
		FROM department WHERE department_id = $1
	`, id).Scan(&d.DepartmentID, &d.Name, &d.Description)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PGRepo) Categories(ctx context.Context, f CategoryFilter) ([]Category, int, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var (
		conds []string
		args  []any
	)
	if f.DepartmentID > 0 {
		args = append(args, f.DepartmentID)
		conds = append(conds, fmt.Sprintf("c.department_id = $%d", len(args)))
	}
	if f.ProductID > 0 {
		args = append(args, f.ProductID)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_category pc WHERE pc.category_id = c.category_id AND pc.product_id = $%d)", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM category c`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := `SELECT c.category_id, c.department_id, c.name, COALESCE(c.description, '') FROM category c` +
		where + " ORDER BY c." + categoryOrder(f.OrderBy)
	if f.Page.Limit > 0 {
		args = append(args, f.Page.Limit, f.Page.Offset())
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.CategoryID, &c.DepartmentID, &c.Name, &c.Description); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) Category(ctx context.Context, id int) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var c Category
	err := r.db.QueryRow(ctx, `
		SELECT category_id, department_id, name, COALESCE(description, '')
		FROM category WHERE category_id = $1
	`, id).Scan(&c.CategoryID, &c.DepartmentID, &c.Name, &c.Description)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) Attributes(ctx context.Context) ([]Attribute, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT attribute_id, name FROM attribute ORDER BY attribute_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Attribute
	for rows.Next() {
		var a Attribute
		if err := rows.Scan(&a.AttributeID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PGRepo) Attribute(ctx context.Context, id int) (*Attribute, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var a Attribute
	err := r.db.QueryRow(ctx, `SELECT attribute_id, name FROM attribute WHERE attribute_id = $1`, id).
		Scan(&a.AttributeID, &a.Name)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGRepo) AttributeValues(ctx context.Context, attributeID int) ([]AttributeValue, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT attribute_value_id, value
		FROM attribute_value WHERE attribute_id = $1
		ORDER BY attribute_value_id
	`, attributeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AttributeValue
	for rows.Next() {
		var v AttributeValue
		if err := rows.Scan(&v.AttributeValueID, &v.Value); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PGRepo) ProductAttributes(ctx context.Context, productID int) ([]ProductAttribute, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT a.name, av.attribute_value_id, av.value
		FROM product_attribute pa
		JOIN attribute_value av ON av.attribute_value_id = pa.attribute_value_id
		JOIN attribute a ON a.attribute_id = av.attribute_id
		WHERE pa.product_id = $1
		ORDER BY a.name, av.attribute_value_id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ProductAttribute
	for rows.Next() {
		var pa ProductAttribute
		if err := rows.Scan(&pa.AttributeName, &pa.AttributeValueID, &pa.AttributeValue); err != nil {
			return nil, err
		}
		out = append(out, pa)
	}
	return out, rows.Err()
}

const productColumns = `p.product_id, p.name, COALESCE(p.description, ''), p.price, p.discounted_price,
	COALESCE(p.image, ''), COALESCE(p.image_2, ''), COALESCE(p.thumbnail, '')`

func scanProduct(row pgx.Row, p *Product) error {
	return row.Scan(&p.ProductID, &p.Name, &p.Description, &p.Price, &p.DiscountedPrice,
		&p.Image, &p.Image2, &p.Thumbnail)
}

// likeEscape escapes ILIKE wildcards in a user supplied term.
func likeEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func productWhere(f ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if len(f.CategoryIDs) > 0 {
		args = append(args, f.CategoryIDs)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_category pc WHERE pc.product_id = p.product_id AND pc.category_id = ANY($%d))", len(args)))
	}
	if len(f.Terms) > 0 {
		terms := make([]string, 0, len(f.Terms))
		for _, t := range f.Terms {
			args = append(args, likeEscape(t))
			terms = append(terms, fmt.Sprintf("p.name ILIKE '%%' || $%d || '%%'", len(args)))
		}
		joiner := " OR "
		if f.MatchAll {
			joiner = " AND "
		}
		conds = append(conds, "("+strings.Join(terms, joiner)+")")
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PGRepo) Products(ctx context.Context, f ProductFilter) ([]Product, int, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	where, args := productWhere(f)
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM product p`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Page.Limit, f.Page.Offset())
	sql := fmt.Sprintf(`SELECT %s FROM product p%s ORDER BY p.product_id LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) Product(ctx context.Context, id int) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var p Product
	err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM product p WHERE p.product_id = $1`, id), &p)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) ProductLocations(ctx context.Context, productID int) ([]Location, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT c.category_id, c.name, d.department_id, d.name
		FROM product_category pc
		JOIN category c ON c.category_id = pc.category_id
		JOIN department d ON d.department_id = c.department_id
		WHERE pc.product_id = $1
		ORDER BY c.category_id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Location
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.CategoryID, &l.CategoryName, &l.DepartmentID, &l.DepartmentName); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
