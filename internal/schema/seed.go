package schema

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedRows returns the reference data in insertion order. Each element is a
// slice pointer so it goes out as one batch insert.
func seedRows() []interface{} {
	pa := productAttributes()
	return []interface{}{
		&[]Tax{
			{TaxID: 1, TaxType: "Sales Tax at 8.5%", TaxPercentage: dec("8.50")},
			{TaxID: 2, TaxType: "No Tax", TaxPercentage: dec("0.00")},
		},
		&[]ShippingRegion{
			{ShippingRegionID: 1, ShippingRegion: "Please Select"},
			{ShippingRegionID: 2, ShippingRegion: "US / Canada"},
			{ShippingRegionID: 3, ShippingRegion: "Europe"},
			{ShippingRegionID: 4, ShippingRegion: "Rest of World"},
		},
		&[]Shipping{
			{ShippingID: 1, ShippingType: "Next Day Delivery ($20)", ShippingCost: dec("20.00"), ShippingRegionID: 2},
			{ShippingID: 2, ShippingType: "3-4 Days ($10)", ShippingCost: dec("10.00"), ShippingRegionID: 2},
			{ShippingID: 3, ShippingType: "7 Days ($5)", ShippingCost: dec("5.00"), ShippingRegionID: 2},
			{ShippingID: 4, ShippingType: "By air (7 days, $25)", ShippingCost: dec("25.00"), ShippingRegionID: 3},
			{ShippingID: 5, ShippingType: "By sea (28 days, $10)", ShippingCost: dec("10.00"), ShippingRegionID: 3},
			{ShippingID: 6, ShippingType: "By air (10 days, $35)", ShippingCost: dec("35.00"), ShippingRegionID: 4},
			{ShippingID: 7, ShippingType: "By sea (28 days, $30)", ShippingCost: dec("30.00"), ShippingRegionID: 4},
		},
		&[]Department{
			{DepartmentID: 1, Name: "Regional", Description: "Proud of your country? Wear a T-shirt with a national symbol stamp!"},
			{DepartmentID: 2, Name: "Nature", Description: "Find beautiful T-shirts with animals and flowers in our Nature department!"},
			{DepartmentID: 3, Name: "Seasonal", Description: "Each time of the year has a special flavor. Our seasonal T-shirts express traditional symbols using unique postal stamp pictures."},
		},
		&[]Category{
			{CategoryID: 1, DepartmentID: 1, Name: "French", Description: "The French have always had an eye for beauty."},
			{CategoryID: 2, DepartmentID: 1, Name: "Italian", Description: "The full and resplendent treasure chest of art, literature, music, and science that Italy has given the world is reflected splendidly in its postal stamps."},
			{CategoryID: 3, DepartmentID: 2, Name: "Animal", Description: "Our ever-growing selection of beautiful animal T-shirts represents critters from everywhere, both wild and domestic."},
			{CategoryID: 4, DepartmentID: 3, Name: "Christmas", Description: "Because this is a unique Christmas T-shirt that you'll only wear a few times a year."},
		},
		&[]Product{
			{ProductID: 1, Name: "Arc d'Triomphe", Description: "This beautiful and iconic T-shirt will no doubt lead you to your own triumph.",
				Price: dec("14.99"), DiscountedPrice: dec("0.00"),
				Image: "arc-d-triomphe.gif", Image2: "arc-d-triomphe-2.gif", Thumbnail: "arc-d-triomphe-thumbnail.gif"},
			{ProductID: 2, Name: "Chartres Cathedral", Description: "The Fur Merchants. Not all the beautiful stained glass in the great cathedrals depicts saints and angels!",
				Price: dec("16.95"), DiscountedPrice: dec("15.95"),
				Image: "chartres-cathedral.gif", Image2: "chartres-cathedral-2.gif", Thumbnail: "chartres-cathedral-thumbnail.gif", Display: 2},
			{ProductID: 3, Name: "Coat of Arms", Description: "There's good reason why the ship plays a prominent part on this shield!",
				Price: dec("14.50"), DiscountedPrice: dec("0.00"),
				Image: "coat-of-arms.gif", Image2: "coat-of-arms-2.gif", Thumbnail: "coat-of-arms-thumbnail.gif"},
			{ProductID: 4, Name: "Gallic Cock", Description: "This fancy chicken is perhaps the most beloved of all French symbols.",
				Price: dec("18.99"), DiscountedPrice: dec("16.99"),
				Image: "gallic-cock.gif", Image2: "gallic-cock-2.gif", Thumbnail: "gallic-cock-thumbnail.gif", Display: 2},
		},
		&[]ProductCategory{
			{ProductID: 1, CategoryID: 1},
			{ProductID: 2, CategoryID: 1},
			{ProductID: 3, CategoryID: 1},
			{ProductID: 3, CategoryID: 2},
			{ProductID: 4, CategoryID: 1},
			{ProductID: 4, CategoryID: 3},
		},
		&[]Attribute{
			{AttributeID: 1, Name: "Size"},
			{AttributeID: 2, Name: "Color"},
		},
		&[]AttributeValue{
			{AttributeValueID: 1, AttributeID: 1, Value: "S"},
			{AttributeValueID: 2, AttributeID: 1, Value: "M"},
			{AttributeValueID: 3, AttributeID: 1, Value: "L"},
			{AttributeValueID: 4, AttributeID: 1, Value: "XL"},
			{AttributeValueID: 5, AttributeID: 1, Value: "XXL"},
			{AttributeValueID: 6, AttributeID: 2, Value: "White"},
			{AttributeValueID: 7, AttributeID: 2, Value: "Black"},
			{AttributeValueID: 8, AttributeID: 2, Value: "Red"},
		},
		&pa,
	}
}

// every product comes in every attribute value
func productAttributes() []ProductAttribute {
	var out []ProductAttribute
	for p := 1; p <= 4; p++ {
		for v := 1; v <= 8; v++ {
			out = append(out, ProductAttribute{ProductID: p, AttributeValueID: v})
		}
	}
	return out
}
