package customer

// RegisterRequest payload of signup.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required,max=50"  example:"Ana Ruiz"`
	Email    string `json:"email"    binding:"required,email"   example:"ana@example.com"`
	Password string `json:"password" binding:"required,min=6"   example:"s3cret!"`
}

// LoginRequest payload of login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateRequest payload of profile update. Empty password keeps the current one.
// swagger:model UpdateCustomerRequest
type UpdateRequest struct {
	Name     string `json:"name"      binding:"required,max=50"`
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"omitempty,min=6"`
	DayPhone string `json:"day_phone" binding:"max=100"`
	EvePhone string `json:"eve_phone" binding:"max=100"`
	MobPhone string `json:"mob_phone" binding:"max=100"`
}

// AddressRequest payload of address update.
// swagger:model AddressRequest
type AddressRequest struct {
	Address1         string `json:"address_1"          binding:"required,max=100"`
	Address2         string `json:"address_2"          binding:"max=100"`
	City             string `json:"city"               binding:"required,max=100"`
	Region           string `json:"region"             binding:"required,max=100"`
	PostalCode       string `json:"postal_code"        binding:"required,max=100"`
	Country          string `json:"country"            binding:"required,max=100"`
	ShippingRegionID int    `json:"shipping_region_id" binding:"required"`
}

// CreditCardRequest payload of credit card update.
// swagger:model CreditCardRequest
type CreditCardRequest struct {
	CreditCard string `json:"credit_card" binding:"required" example:"4242424242424242"`
}

// Session is returned by register and login.
// swagger:model Session
type Session struct {
	Customer    *Customer `json:"customer"`
	AccessToken string    `json:"accessToken" example:"Bearer eyJhbGciOi..."`
	ExpiresIn   string    `json:"expiresIn" example:"24h"`
}
