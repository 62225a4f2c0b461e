package customer

import (
	"strings"
	"unicode"
)

type Customer struct {
	CustomerID       int    `json:"customer_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PasswordHash     string `json:"-"`
	CreditCard       string `json:"credit_card"`
	Address1         string `json:"address_1"`
	Address2         string `json:"address_2"`
	City             string `json:"city"`
	Region           string `json:"region"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	ShippingRegionID int    `json:"shipping_region_id"`
	DayPhone         string `json:"day_phone"`
	EvePhone         string `json:"eve_phone"`
	MobPhone         string `json:"mob_phone"`
}

// MaskCard keeps the last four digits of a card number.
func MaskCard(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("X", len(number)-4) + number[len(number)-4:]
}

// ValidCard checks length and the Luhn checksum of a digits-only number.
func ValidCard(number string) bool {
	if len(number) < 12 || len(number) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		r := rune(number[i])
		if !unicode.IsDigit(r) {
			return false
		}
		d := int(r - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }
