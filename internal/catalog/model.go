package catalog

import "github.com/shopspring/decimal"

type Department struct {
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

type Category struct {
	CategoryID   int    `json:"category_id"`
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

type Attribute struct {
	AttributeID int    `json:"attribute_id"`
	Name        string `json:"name"`
}

type AttributeValue struct {
	AttributeValueID int    `json:"attribute_value_id"`
	Value            string `json:"value"`
}

// ProductAttribute is one concrete choice offered for a product, e.g. Color/Red.
type ProductAttribute struct {
	AttributeName    string `json:"attribute_name"`
	AttributeValueID int    `json:"attribute_value_id"`
	AttributeValue   string `json:"attribute_value"`
}

type Product struct {
	ProductID       int             `json:"product_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Image           string          `json:"image"`
	Image2          string          `json:"image_2"`
	Thumbnail       string          `json:"thumbnail"`
}

// ProductDetails is a product with every attribute value it is offered in.
type ProductDetails struct {
	Product
	Attributes []ProductAttribute `json:"attributes"`
}

// Location places a product in the category tree.
type Location struct {
	CategoryID     int    `json:"category_id"`
	CategoryName   string `json:"category_name"`
	DepartmentID   int    `json:"department_id"`
	DepartmentName string `json:"department_name"`
}
