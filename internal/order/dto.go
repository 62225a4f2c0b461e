package order

// CreateRequest payload of checkout.
// swagger:model CreateOrderRequest
type CreateRequest struct {
	CartID     string `json:"cart_id"     binding:"required" example:"0b0c4c9e-7e59-4d87-a0f5-0d3d5ad7a2d4"`
	ShippingID int    `json:"shipping_id" binding:"required" example:"2"`
	TaxID      int    `json:"tax_id"      binding:"required" example:"1"`
}

// CreateInput is CreateRequest plus what the HTTP layer knows about the caller.
type CreateInput struct {
	CreateRequest
	CustomerID     int
	IdempotencyKey string
}

// Created answers a successful checkout.
// swagger:model OrderCreated
type Created struct {
	OrderID int `json:"orderId" example:"1"`
}

// StatusRequest payload of a status change.
// swagger:model UpdateOrderStatusRequest
type StatusRequest struct {
	Status Status `json:"status" binding:"required" example:"paid"`
}
