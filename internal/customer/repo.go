package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeMC777/shop-api/internal/db"
)

var (
	ErrNotFound   = errors.New("customer not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id int) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
}

type PGRepo struct{ db db.Querier }

func NewPGRepo(q db.Querier) *PGRepo { return &PGRepo{db: q} }

const customerColumns = `customer_id, name, email, password, COALESCE(credit_card, ''),
	COALESCE(address_1, ''), COALESCE(address_2, ''), COALESCE(city, ''), COALESCE(region, ''),
	COALESCE(postal_code, ''), COALESCE(country, ''), shipping_region_id,
	COALESCE(day_phone, ''), COALESCE(eve_phone, ''), COALESCE(mob_phone, '')`

func (r *PGRepo) scanOne(ctx context.Context, where string, arg any) (*Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var c Customer
	err := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customer WHERE `+where, arg).Scan(
		&c.CustomerID, &c.Name, &c.Email, &c.PasswordHash, &c.CreditCard,
		&c.Address1, &c.Address2, &c.City, &c.Region,
		&c.PostalCode, &c.Country, &c.ShippingRegionID,
		&c.DayPhone, &c.EvePhone, &c.MobPhone,
	)
	if db.IsNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepo) Create(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO customer (name, email, password, shipping_region_id)
		VALUES ($1, $2, $3, 1)
		RETURNING customer_id, shipping_region_id
	`, c.Name, c.Email, c.PasswordHash).Scan(&c.CustomerID, &c.ShippingRegionID)
	if db.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int) (*Customer, error) {
	return r.scanOne(ctx, "customer_id = $1", id)
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	return r.scanOne(ctx, "LOWER(email) = LOWER($1)", email)
}

// Update writes every mutable column of c.
func (r *PGRepo) Update(ctx context.Context, c *Customer) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE customer
		SET name = $2, email = $3, password = $4, credit_card = $5,
		    address_1 = $6, address_2 = $7, city = $8, region = $9,
		    postal_code = $10, country = $11, shipping_region_id = $12,
		    day_phone = $13, eve_phone = $14, mob_phone = $15
		WHERE customer_id = $1
	`, c.CustomerID, c.Name, c.Email, c.PasswordHash, c.CreditCard,
		c.Address1, c.Address2, c.City, c.Region,
		c.PostalCode, c.Country, c.ShippingRegionID,
		c.DayPhone, c.EvePhone, c.MobPhone)
	if db.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
