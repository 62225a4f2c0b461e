// Package docs holds the swagger document served at /swagger.
// Regenerate with: swag init -g cmd/shop-api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/departments": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"departments"
				],
				"summary": "List departments",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-catalog_Department"
						}
					}
				}
			}
		},
		"/departments/{department_id}": {
			"get": {
				"tags": [
					"departments"
				],
				"summary": "Get department",
				"parameters": [
					{
						"type": "integer",
						"description": "department id",
						"name": "department_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/catalog.Department"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/categories": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "List categories",
				"parameters": [
					{
						"type": "integer",
						"description": "page",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "category_id or name",
						"name": "order",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/paging.Result-catalog_Category"
						}
					}
				}
			}
		},
		"/categories/{category_id}": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "Get category",
				"parameters": [
					{
						"type": "integer",
						"description": "category id",
						"name": "category_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/catalog.Category"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/categories/inProduct/{product_id}": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "Categories of a product",
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "product_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-catalog_Category"
						}
					}
				}
			}
		},
		"/categories/inDepartment/{department_id}": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "Categories of a department",
				"parameters": [
					{
						"type": "integer",
						"description": "department id",
						"name": "department_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-catalog_Category"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/attributes": {
			"get": {
				"tags": [
					"attributes"
				],
				"summary": "List attributes",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-catalog_Attribute"
						}
					}
				}
			}
		},
		"/attributes/{attribute_id}": {
			"get": {
				"tags": [
					"attributes"
				],
				"summary": "Get attribute",
				"parameters": [
					{
						"type": "integer",
						"description": "attribute id",
						"name": "attribute_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/catalog.Attribute"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/attributes/values/{attribute_id}": {
			"get": {
				"tags": [
					"attributes"
				],
				"summary": "Values of an attribute",
				"parameters": [
					{
						"type": "integer",
						"description": "attribute id",
						"name": "attribute_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-catalog_AttributeValue"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/attributes/inProduct/{product_id}": {
			"get": {
				"tags": [
					"attributes"
				],
				"summary": "Attribute values of a product",
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "product_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-catalog_ProductAttribute"
						}
					}
				}
			}
		},
		"/products": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "List products",
				"parameters": [
					{
						"type": "integer",
						"description": "page",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "truncate descriptions (default 200)",
						"name": "description_length",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/paging.Result-catalog_Product"
						}
					}
				}
			}
		},
		"/products/search": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "Search products by name",
				"parameters": [
					{
						"type": "string",
						"description": "terms separated by spaces or commas",
						"name": "query_string",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "on|true to require every term",
						"name": "all_words",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/paging.Result-catalog_Product"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/products/{product_id}": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "Get product",
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "product_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/catalog.Product"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/products/inCategory/{category_id}": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "Products of a category",
				"parameters": [
					{
						"type": "integer",
						"description": "category id",
						"name": "category_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "page",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "truncate descriptions (default 200)",
						"name": "description_length",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/paging.Result-catalog_Product"
						}
					}
				}
			}
		},
		"/products/inDepartment/{department_id}": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "Products of a department",
				"parameters": [
					{
						"type": "integer",
						"description": "department id",
						"name": "department_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "page",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "page size",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "truncate descriptions (default 200)",
						"name": "description_length",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/paging.Result-catalog_Product"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/products/{product_id}/details": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "Product with its attributes",
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "product_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/catalog.ProductDetails"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/products/{product_id}/locations": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "Categories and departments of a product",
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "product_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-catalog_Location"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/tax": {
			"get": {
				"tags": [
					"tax"
				],
				"summary": "List taxes",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-tax_Tax"
						}
					}
				}
			}
		},
		"/tax/{tax_id}": {
			"get": {
				"tags": [
					"tax"
				],
				"summary": "Get tax",
				"parameters": [
					{
						"type": "integer",
						"description": "tax id",
						"name": "tax_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tax.Tax"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/shipping/regions": {
			"get": {
				"tags": [
					"shipping"
				],
				"summary": "List shipping regions",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-shipping_Region"
						}
					}
				}
			}
		},
		"/shipping/regions/{shipping_region_id}": {
			"get": {
				"tags": [
					"shipping"
				],
				"summary": "Shipping methods of a region",
				"parameters": [
					{
						"type": "integer",
						"description": "shipping region id",
						"name": "shipping_region_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-shipping_Method"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/customers": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"customers"
				],
				"summary": "Register a customer",
				"parameters": [
					{
						"description": "new customer",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/customer.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/customer.Session"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/customers/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"customers"
				],
				"summary": "Log in",
				"parameters": [
					{
						"description": "credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/customer.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/customer.Session"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/customer": {
			"get": {
				"security": [
					{
						"Bearer": []
					}
				],
				"tags": [
					"customers"
				],
				"summary": "Current customer",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/customer.Customer"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"tags": [
					"customers"
				],
				"summary": "Update the current customer",
				"parameters": [
					{
						"description": "profile",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/customer.UpdateRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/customer.Customer"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/customers/address": {
			"put": {
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"tags": [
					"customers"
				],
				"summary": "Update the shipping address",
				"parameters": [
					{
						"description": "address",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/customer.AddressRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/customer.Customer"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/customers/creditCard": {
			"put": {
				"security": [
					{
						"Bearer": []
					}
				],
				"description": "Only the masked number is kept.",
				"consumes": [
					"application/json"
				],
				"tags": [
					"customers"
				],
				"summary": "Store a credit card",
				"parameters": [
					{
						"description": "card",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/customer.CreditCardRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/customer.Customer"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/shoppingcart/generateUniqueId": {
			"get": {
				"tags": [
					"shoppingcart"
				],
				"summary": "New cart id",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.IDResponse"
						}
					}
				}
			}
		},
		"/shoppingcart/add": {
			"post": {
				"description": "Adding the same product with the same attributes again increases the quantity of the existing line.",
				"consumes": [
					"application/json"
				],
				"tags": [
					"shoppingcart"
				],
				"summary": "Add a product to a cart",
				"parameters": [
					{
						"description": "line",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/cart.AddRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Line"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/shoppingcart/{cart_id}": {
			"get": {
				"tags": [
					"shoppingcart"
				],
				"summary": "Cart contents",
				"parameters": [
					{
						"type": "string",
						"description": "cart id",
						"name": "cart_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Cart"
						}
					}
				}
			}
		},
		"/shoppingcart/update/{item_id}": {
			"put": {
				"consumes": [
					"application/json"
				],
				"tags": [
					"shoppingcart"
				],
				"summary": "Change the quantity of a cart line",
				"parameters": [
					{
						"type": "integer",
						"description": "cart item id",
						"name": "item_id",
						"in": "path",
						"required": true
					},
					{
						"description": "quantity",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/cart.UpdateRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Line"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/shoppingcart/empty/{cart_id}": {
			"delete": {
				"tags": [
					"shoppingcart"
				],
				"summary": "Remove every line of a cart",
				"parameters": [
					{
						"type": "string",
						"description": "cart id",
						"name": "cart_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Deleted"
						}
					}
				}
			}
		},
		"/shoppingcart/removeProduct/{item_id}": {
			"delete": {
				"tags": [
					"shoppingcart"
				],
				"summary": "Remove a cart line",
				"parameters": [
					{
						"type": "integer",
						"description": "cart item id",
						"name": "item_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Deleted"
						}
					}
				}
			}
		},
		"/shoppingcart/saveForLater/{item_id}": {
			"get": {
				"tags": [
					"shoppingcart"
				],
				"summary": "Move a line to saved for later",
				"parameters": [
					{
						"type": "integer",
						"description": "cart item id",
						"name": "item_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Line"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/shoppingcart/moveToCart/{item_id}": {
			"get": {
				"tags": [
					"shoppingcart"
				],
				"summary": "Move a saved line back to the cart",
				"parameters": [
					{
						"type": "integer",
						"description": "cart item id",
						"name": "item_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Line"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/shoppingcart/getSaved/{cart_id}": {
			"get": {
				"tags": [
					"shoppingcart"
				],
				"summary": "Saved for later lines",
				"parameters": [
					{
						"type": "string",
						"description": "cart id",
						"name": "cart_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-cart_Line"
						}
					}
				}
			}
		},
		"/shoppingcart/totalAmount/{cart_id}": {
			"get": {
				"tags": [
					"shoppingcart"
				],
				"summary": "Total of the buy-now lines",
				"parameters": [
					{
						"type": "string",
						"description": "cart id",
						"name": "cart_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/cart.Amount"
						}
					}
				}
			}
		},
		"/orders": {
			"post": {
				"security": [
					{
						"Bearer": []
					}
				],
				"description": "Creates an order from the buy-now lines of the cart and empties them. A repeated Idempotency-Key returns the first order.",
				"consumes": [
					"application/json"
				],
				"tags": [
					"orders"
				],
				"summary": "Check out a cart",
				"parameters": [
					{
						"type": "string",
						"description": "client generated key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "checkout",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/order.CreateRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/order.Created"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/orders/inCustomer": {
			"get": {
				"security": [
					{
						"Bearer": []
					}
				],
				"tags": [
					"orders"
				],
				"summary": "Orders of the current customer",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/httpx.Rows-order_Order"
						}
					}
				}
			}
		},
		"/orders/{order_id}": {
			"get": {
				"security": [
					{
						"Bearer": []
					}
				],
				"tags": [
					"orders"
				],
				"summary": "Order with lines and amount breakdown",
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "order_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Summary"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/orders/shortDetail/{order_id}": {
			"get": {
				"security": [
					{
						"Bearer": []
					}
				],
				"tags": [
					"orders"
				],
				"summary": "Order header",
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "order_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Order"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/orders/{order_id}/status": {
			"put": {
				"security": [
					{
						"Bearer": []
					}
				],
				"tags": [
					"orders"
				],
				"summary": "Move an order to its next status",
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "order_id",
						"in": "path",
						"required": true
					},
					{
						"description": "target status",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/order.StatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Order"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		},
		"/products/{product_id}/reviews": {
			"get": {
				"tags": [
					"products"
				],
				"summary": "Reviews of a product",
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "product_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/review.List"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"Bearer": []
					}
				],
				"tags": [
					"products"
				],
				"summary": "Review a product",
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "product_id",
						"in": "path",
						"required": true
					},
					{
						"description": "review",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/review.CreateRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/review.Review"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"httpx.Rows-catalog_Department": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.Department"
					}
				}
			}
		},
		"catalog.Department": {
			"type": "object",
			"properties": {
				"department_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"httpx.ErrorBody": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/httpx.ErrorDetail"
				}
			}
		},
		"httpx.ErrorDetail": {
			"type": "object",
			"properties": {
				"status": {
					"type": "integer",
					"example": 404
				},
				"code": {
					"type": "string",
					"example": "NOT_FOUND"
				},
				"message": {
					"type": "string",
					"example": "order not found"
				},
				"field": {
					"type": "string"
				}
			}
		},
		"paging.Result-catalog_Category": {
			"type": "object",
			"properties": {
				"paginationMeta": {
					"$ref": "#/definitions/paging.Meta"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.Category"
					}
				}
			}
		},
		"paging.Meta": {
			"type": "object",
			"properties": {
				"currentPage": {
					"type": "integer"
				},
				"currentPageSize": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				},
				"totalRecords": {
					"type": "integer"
				}
			}
		},
		"catalog.Category": {
			"type": "object",
			"properties": {
				"category_id": {
					"type": "integer"
				},
				"department_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"httpx.Rows-catalog_Category": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.Category"
					}
				}
			}
		},
		"httpx.Rows-catalog_Attribute": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.Attribute"
					}
				}
			}
		},
		"catalog.Attribute": {
			"type": "object",
			"properties": {
				"attribute_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"httpx.Rows-catalog_AttributeValue": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.AttributeValue"
					}
				}
			}
		},
		"catalog.AttributeValue": {
			"type": "object",
			"properties": {
				"attribute_value_id": {
					"type": "integer"
				},
				"value": {
					"type": "string"
				}
			}
		},
		"httpx.Rows-catalog_ProductAttribute": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.ProductAttribute"
					}
				}
			}
		},
		"catalog.ProductAttribute": {
			"type": "object",
			"properties": {
				"attribute_name": {
					"type": "string"
				},
				"attribute_value_id": {
					"type": "integer"
				},
				"attribute_value": {
					"type": "string"
				}
			}
		},
		"paging.Result-catalog_Product": {
			"type": "object",
			"properties": {
				"paginationMeta": {
					"$ref": "#/definitions/paging.Meta"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.Product"
					}
				}
			}
		},
		"catalog.Product": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"discounted_price": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"image_2": {
					"type": "string"
				},
				"thumbnail": {
					"type": "string"
				}
			}
		},
		"catalog.ProductDetails": {
			"type": "object",
			"properties": {
				"product_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"price": {
					"type": "string"
				},
				"discounted_price": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"image_2": {
					"type": "string"
				},
				"thumbnail": {
					"type": "string"
				},
				"attributes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.ProductAttribute"
					}
				}
			}
		},
		"httpx.Rows-catalog_Location": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/catalog.Location"
					}
				}
			}
		},
		"catalog.Location": {
			"type": "object",
			"properties": {
				"category_id": {
					"type": "integer"
				},
				"category_name": {
					"type": "string"
				},
				"department_id": {
					"type": "integer"
				},
				"department_name": {
					"type": "string"
				}
			}
		},
		"httpx.Rows-tax_Tax": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/tax.Tax"
					}
				}
			}
		},
		"tax.Tax": {
			"type": "object",
			"properties": {
				"tax_id": {
					"type": "integer"
				},
				"tax_type": {
					"type": "string"
				},
				"tax_percentage": {
					"type": "string"
				}
			}
		},
		"httpx.Rows-shipping_Region": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shipping.Region"
					}
				}
			}
		},
		"shipping.Region": {
			"type": "object",
			"properties": {
				"shipping_region_id": {
					"type": "integer"
				},
				"shipping_region": {
					"type": "string"
				}
			}
		},
		"httpx.Rows-shipping_Method": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shipping.Method"
					}
				}
			}
		},
		"shipping.Method": {
			"type": "object",
			"properties": {
				"shipping_id": {
					"type": "integer"
				},
				"shipping_type": {
					"type": "string"
				},
				"shipping_cost": {
					"type": "string"
				},
				"shipping_region_id": {
					"type": "integer"
				}
			}
		},
		"customer.RegisterRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"example": "Ana Ruiz"
				},
				"email": {
					"type": "string",
					"example": "ana@example.com"
				},
				"password": {
					"type": "string",
					"example": "s3cret!"
				}
			},
			"required": [
				"name",
				"email",
				"password"
			]
		},
		"customer.Session": {
			"type": "object",
			"properties": {
				"customer": {
					"$ref": "#/definitions/customer.Customer"
				},
				"accessToken": {
					"type": "string",
					"example": "Bearer eyJhbGciOi..."
				},
				"expiresIn": {
					"type": "string",
					"example": "24h"
				}
			}
		},
		"customer.Customer": {
			"type": "object",
			"properties": {
				"customer_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"credit_card": {
					"type": "string"
				},
				"address_1": {
					"type": "string"
				},
				"address_2": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"region": {
					"type": "string"
				},
				"postal_code": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"shipping_region_id": {
					"type": "integer"
				},
				"day_phone": {
					"type": "string"
				},
				"eve_phone": {
					"type": "string"
				},
				"mob_phone": {
					"type": "string"
				}
			}
		},
		"customer.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"customer.UpdateRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"day_phone": {
					"type": "string"
				},
				"eve_phone": {
					"type": "string"
				},
				"mob_phone": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"email"
			]
		},
		"customer.AddressRequest": {
			"type": "object",
			"properties": {
				"address_1": {
					"type": "string"
				},
				"address_2": {
					"type": "string"
				},
				"city": {
					"type": "string"
				},
				"region": {
					"type": "string"
				},
				"postal_code": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"shipping_region_id": {
					"type": "integer"
				}
			},
			"required": [
				"address_1",
				"city",
				"region",
				"postal_code",
				"country",
				"shipping_region_id"
			]
		},
		"customer.CreditCardRequest": {
			"type": "object",
			"properties": {
				"credit_card": {
					"type": "string",
					"example": "4242424242424242"
				}
			},
			"required": [
				"credit_card"
			]
		},
		"cart.IDResponse": {
			"type": "object",
			"properties": {
				"cart_id": {
					"type": "string"
				}
			}
		},
		"cart.AddRequest": {
			"type": "object",
			"properties": {
				"cart_id": {
					"type": "string",
					"example": "0b0c4c9e-7e59-4d87-a0f5-0d3d5ad7a2d4"
				},
				"product_id": {
					"type": "integer",
					"example": 2
				},
				"attributes": {
					"type": "string",
					"example": "LG, Red"
				},
				"quantity": {
					"type": "integer",
					"example": 1
				}
			},
			"required": [
				"product_id"
			]
		},
		"cart.Line": {
			"type": "object",
			"properties": {
				"item_id": {
					"type": "integer"
				},
				"cart_id": {
					"type": "string"
				},
				"product_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"attributes": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"price": {
					"type": "string"
				},
				"discounted_price": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"buy_now": {
					"type": "boolean"
				},
				"added_on": {
					"type": "string",
					"format": "date-time"
				},
				"subtotal": {
					"type": "string"
				}
			}
		},
		"cart.Cart": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/cart.Line"
					}
				},
				"totalAmount": {
					"type": "string"
				}
			}
		},
		"cart.UpdateRequest": {
			"type": "object",
			"properties": {
				"quantity": {
					"type": "integer",
					"example": 3
				}
			}
		},
		"cart.Deleted": {
			"type": "object",
			"properties": {
				"deleted": {
					"type": "integer"
				}
			}
		},
		"httpx.Rows-cart_Line": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/cart.Line"
					}
				}
			}
		},
		"cart.Amount": {
			"type": "object",
			"properties": {
				"totalAmount": {
					"type": "string"
				}
			}
		},
		"order.CreateRequest": {
			"type": "object",
			"properties": {
				"cart_id": {
					"type": "string",
					"example": "0b0c4c9e-7e59-4d87-a0f5-0d3d5ad7a2d4"
				},
				"shipping_id": {
					"type": "integer",
					"example": 2
				},
				"tax_id": {
					"type": "integer",
					"example": 1
				}
			},
			"required": [
				"cart_id",
				"shipping_id",
				"tax_id"
			]
		},
		"order.Created": {
			"type": "object",
			"properties": {
				"orderId": {
					"type": "integer",
					"example": 1
				}
			}
		},
		"httpx.Rows-order_Order": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/order.Order"
					}
				}
			}
		},
		"order.Order": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "integer"
				},
				"customer_id": {
					"type": "integer"
				},
				"cart_id": {
					"type": "string"
				},
				"shipping_id": {
					"type": "integer"
				},
				"tax_id": {
					"type": "integer"
				},
				"total_amount": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_on": {
					"type": "string",
					"format": "date-time"
				},
				"shipped_on": {
					"type": "string",
					"format": "date-time"
				},
				"tax_type": {
					"type": "string"
				},
				"tax_amount": {
					"type": "string"
				},
				"shipping_type": {
					"type": "string"
				},
				"shipping_cost": {
					"type": "string"
				}
			}
		},
		"order.Summary": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "integer"
				},
				"customer_id": {
					"type": "integer"
				},
				"cart_id": {
					"type": "string"
				},
				"shipping_id": {
					"type": "integer"
				},
				"tax_id": {
					"type": "integer"
				},
				"total_amount": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"created_on": {
					"type": "string",
					"format": "date-time"
				},
				"shipped_on": {
					"type": "string",
					"format": "date-time"
				},
				"tax_type": {
					"type": "string"
				},
				"tax_amount": {
					"type": "string"
				},
				"shipping_type": {
					"type": "string"
				},
				"shipping_cost": {
					"type": "string"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/order.Detail"
					}
				},
				"subtotal": {
					"type": "string"
				}
			}
		},
		"order.Detail": {
			"type": "object",
			"properties": {
				"item_id": {
					"type": "integer"
				},
				"order_id": {
					"type": "integer"
				},
				"product_id": {
					"type": "integer"
				},
				"product_name": {
					"type": "string"
				},
				"attributes": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unit_price": {
					"type": "string"
				},
				"discounted_price": {
					"type": "string"
				},
				"unit_cost": {
					"type": "string"
				},
				"subtotal": {
					"type": "string"
				}
			}
		},
		"order.StatusRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "paid"
				}
			},
			"required": [
				"status"
			]
		},
		"review.List": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/review.Review"
					}
				},
				"summary": {
					"$ref": "#/definitions/review.Summary"
				}
			}
		},
		"review.Review": {
			"type": "object",
			"properties": {
				"review_id": {
					"type": "integer"
				},
				"customer_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"product_id": {
					"type": "integer"
				},
				"review": {
					"type": "string"
				},
				"rating": {
					"type": "integer"
				},
				"created_on": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"review.Summary": {
			"type": "object",
			"properties": {
				"averageRating": {
					"type": "number"
				},
				"totalCount": {
					"type": "integer"
				}
			}
		},
		"review.CreateRequest": {
			"type": "object",
			"properties": {
				"review": {
					"type": "string",
					"example": "Fits perfectly"
				},
				"rating": {
					"type": "integer",
					"example": 5
				}
			},
			"required": [
				"review",
				"rating"
			]
		}
	},
	"securityDefinitions": {
		"Bearer": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shop API",
	Description:      "Catalog, customers, shopping cart and orders for a t-shirt shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
