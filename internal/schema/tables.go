// Package schema declares the Postgres tables as gorm models. It is only used
// to create and seed the database; request paths query through pgx.
package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

type Department struct {
	DepartmentID int    `gorm:"column:department_id;primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Description  string `gorm:"size:1000"`
}

func (Department) TableName() string { return "department" }

type Category struct {
	CategoryID   int    `gorm:"column:category_id;primaryKey"`
	DepartmentID int    `gorm:"column:department_id;not null;index"`
	Name         string `gorm:"size:100;not null"`
	Description  string `gorm:"size:1000"`
}

func (Category) TableName() string { return "category" }

type Product struct {
	ProductID       int             `gorm:"column:product_id;primaryKey"`
	Name            string          `gorm:"size:100;not null;index"`
	Description     string          `gorm:"size:1000;not null"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DiscountedPrice decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Image           string          `gorm:"size:150"`
	Image2          string          `gorm:"column:image_2;size:150"`
	Thumbnail       string          `gorm:"size:150"`
	Display         int16           `gorm:"not null;default:0"`
}

func (Product) TableName() string { return "product" }

type ProductCategory struct {
	ProductID  int `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	CategoryID int `gorm:"column:category_id;primaryKey;autoIncrement:false;index"`
}

func (ProductCategory) TableName() string { return "product_category" }

type Attribute struct {
	AttributeID int    `gorm:"column:attribute_id;primaryKey"`
	Name        string `gorm:"size:100;not null"`
}

func (Attribute) TableName() string { return "attribute" }

type AttributeValue struct {
	AttributeValueID int    `gorm:"column:attribute_value_id;primaryKey"`
	AttributeID      int    `gorm:"column:attribute_id;not null;index"`
	Value            string `gorm:"size:100;not null"`
}

func (AttributeValue) TableName() string { return "attribute_value" }

type ProductAttribute struct {
	ProductID        int `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	AttributeValueID int `gorm:"column:attribute_value_id;primaryKey;autoIncrement:false"`
}

func (ProductAttribute) TableName() string { return "product_attribute" }

// Customer.CreditCard only ever holds the masked number.
type Customer struct {
	CustomerID       int    `gorm:"column:customer_id;primaryKey"`
	Name             string `gorm:"size:50;not null"`
	Email            string `gorm:"size:100;not null;uniqueIndex:ux_customer_email"`
	Password         string `gorm:"size:100;not null"`
	CreditCard       string `gorm:"column:credit_card;type:text"`
	Address1         string `gorm:"column:address_1;size:100"`
	Address2         string `gorm:"column:address_2;size:100"`
	City             string `gorm:"size:100"`
	Region           string `gorm:"size:100"`
	PostalCode       string `gorm:"size:100"`
	Country          string `gorm:"size:100"`
	ShippingRegionID int    `gorm:"column:shipping_region_id;not null;default:1;index"`
	DayPhone         string `gorm:"size:100"`
	EvePhone         string `gorm:"size:100"`
	MobPhone         string `gorm:"size:100"`
}

func (Customer) TableName() string { return "customer" }

// ShoppingCart rows merge on (cart_id, product_id, attributes).
type ShoppingCart struct {
	ItemID     int       `gorm:"column:item_id;primaryKey"`
	CartID     string    `gorm:"column:cart_id;size:36;not null;uniqueIndex:ux_cart_line,priority:1"`
	ProductID  int       `gorm:"column:product_id;not null;uniqueIndex:ux_cart_line,priority:2"`
	Attributes string    `gorm:"size:1000;not null;default:'';uniqueIndex:ux_cart_line,priority:3"`
	Quantity   int       `gorm:"not null"`
	BuyNow     bool      `gorm:"not null;default:true"`
	AddedOn    time.Time `gorm:"not null"`
}

func (ShoppingCart) TableName() string { return "shopping_cart" }

type Order struct {
	OrderID     int             `gorm:"column:order_id;primaryKey"`
	CustomerID  int             `gorm:"column:customer_id;not null;index"`
	CartID      string          `gorm:"column:cart_id;size:36;not null"`
	ShippingID  int             `gorm:"column:shipping_id;not null"`
	TaxID       int             `gorm:"column:tax_id;not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Status      string          `gorm:"size:20;not null;default:placed"`
	CreatedOn   time.Time       `gorm:"not null"`
	ShippedOn   *time.Time

	TaxType      string          `gorm:"size:100;not null;default:''"`
	TaxAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	ShippingType string          `gorm:"size:100;not null;default:''"`
	ShippingCost decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

func (Order) TableName() string { return "orders" }

// OrderDetail is the checkout snapshot of one cart line.
type OrderDetail struct {
	ItemID          int             `gorm:"column:item_id;primaryKey"`
	OrderID         int             `gorm:"column:order_id;not null;index"`
	ProductID       int             `gorm:"column:product_id;not null"`
	ProductName     string          `gorm:"size:100;not null"`
	Attributes      string          `gorm:"size:1000;not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DiscountedPrice decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	UnitCost        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderDetail) TableName() string { return "order_detail" }

type Review struct {
	ReviewID   int       `gorm:"column:review_id;primaryKey"`
	CustomerID int       `gorm:"column:customer_id;not null;uniqueIndex:ux_review_customer_product,priority:1"`
	ProductID  int       `gorm:"column:product_id;not null;index;uniqueIndex:ux_review_customer_product,priority:2"`
	Review     string    `gorm:"type:text;not null"`
	Rating     int16     `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	CreatedOn  time.Time `gorm:"not null"`
}

func (Review) TableName() string { return "review" }

type Tax struct {
	TaxID         int             `gorm:"column:tax_id;primaryKey"`
	TaxType       string          `gorm:"size:100;not null"`
	TaxPercentage decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (Tax) TableName() string { return "tax" }

type ShippingRegion struct {
	ShippingRegionID int    `gorm:"column:shipping_region_id;primaryKey"`
	ShippingRegion   string `gorm:"size:100;not null"`
}

func (ShippingRegion) TableName() string { return "shipping_region" }

type Shipping struct {
	ShippingID       int             `gorm:"column:shipping_id;primaryKey"`
	ShippingType     string          `gorm:"size:100;not null"`
	ShippingCost     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ShippingRegionID int             `gorm:"column:shipping_region_id;not null;index"`
}

func (Shipping) TableName() string { return "shipping" }

var Tables = []interface{}{
	// Catalog
	&Department{},
	&Category{},
	&Product{},
	&ProductCategory{},
	&Attribute{},
	&AttributeValue{},
	&ProductAttribute{},
	// Pricing
	&Tax{},
	&ShippingRegion{},
	&Shipping{},
	// Customers and orders
	&Customer{},
	&ShoppingCart{},
	&Order{},
	&OrderDetail{},
	&Review{},
}
