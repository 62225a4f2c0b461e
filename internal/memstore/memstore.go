// Package memstore is an in-memory implementation of every repository. A
// single Store backs all of them so checkout sees the same carts, products
// and prices that the other services write.
package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/customer"
	"github.com/MikeMC777/shop-api/internal/order"
	"github.com/MikeMC777/shop-api/internal/review"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

type cartRow struct {
	ItemID     int
	CartID     string
	ProductID  int
	Attributes string
	Quantity   int
	BuyNow     bool
	AddedOn    time.Time
}

type data struct {
	departments     map[int]catalog.Department
	categories      map[int]catalog.Category
	productCategory map[int][]int
	attributes      map[int]catalog.Attribute
	attrValues      map[int]attrValue
	productValues   map[int][]int
	products        map[int]catalog.Product
	customers       map[int]customer.Customer
	cart            map[int]cartRow
	orders          map[int]order.Order
	details         map[int][]order.Detail
	reviews         []review.Review
	taxes           map[int]tax.Tax
	regions         map[int]shipping.Region
	methods         map[int]shipping.Method
	seq             map[string]int
}

type attrValue struct {
	AttributeID int
	catalog.AttributeValue
}

func newData() *data {
	return &data{
		departments:     map[int]catalog.Department{},
		categories:      map[int]catalog.Category{},
		productCategory: map[int][]int{},
		attributes:      map[int]catalog.Attribute{},
		attrValues:      map[int]attrValue{},
		productValues:   map[int][]int{},
		products:        map[int]catalog.Product{},
		customers:       map[int]customer.Customer{},
		cart:            map[int]cartRow{},
		orders:          map[int]order.Order{},
		details:         map[int][]order.Detail{},
		taxes:           map[int]tax.Tax{},
		regions:         map[int]shipping.Region{},
		methods:         map[int]shipping.Method{},
		seq:             map[string]int{},
	}
}

// clone copies the mutable tables; catalog rows are values so shallow map
// copies are enough.
func (d *data) clone() *data {
	c := newData()
	for k, v := range d.departments {
		c.departments[k] = v
	}
	for k, v := range d.categories {
		c.categories[k] = v
	}
	for k, v := range d.productCategory {
		c.productCategory[k] = append([]int(nil), v...)
	}
	for k, v := range d.attributes {
		c.attributes[k] = v
	}
	for k, v := range d.attrValues {
		c.attrValues[k] = v
	}
	for k, v := range d.productValues {
		c.productValues[k] = append([]int(nil), v...)
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.customers {
		c.customers[k] = v
	}
	for k, v := range d.cart {
		c.cart[k] = v
	}
	for k, v := range d.orders {
		c.orders[k] = v
	}
	for k, v := range d.details {
		c.details[k] = append([]order.Detail(nil), v...)
	}
	c.reviews = append([]review.Review(nil), d.reviews...)
	for k, v := range d.taxes {
		c.taxes[k] = v
	}
	for k, v := range d.regions {
		c.regions[k] = v
	}
	for k, v := range d.methods {
		c.methods[k] = v
	}
	for k, v := range d.seq {
		c.seq[k] = v
	}
	return c
}

func (d *data) next(table string) int {
	d.seq[table]++
	return d.seq[table]
}

// Store holds every table behind one mutex.
type Store struct {
	mu  sync.Mutex
	d   *data
	now func() time.Time

	// Fault, when set, is consulted before each write named by op
	// ("insert_order", "insert_details", "clear_lines", ...). A non-nil
	// return aborts that write with the error.
	Fault func(op string) error
}

func New() *Store {
	return &Store{d: newData(), now: time.Now}
}

func (s *Store) fault(op string) error {
	if s.Fault == nil {
		return nil
	}
	return s.Fault(op)
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (s *Store) AddDepartment(d catalog.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.departments[d.DepartmentID] = d
}

func (s *Store) AddCategory(c catalog.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.categories[c.CategoryID] = c
}

// AddProduct inserts or replaces a product and links it to categories.
func (s *Store) AddProduct(p catalog.Product, categoryIDs ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.products[p.ProductID] = p
	if len(categoryIDs) > 0 {
		s.d.productCategory[p.ProductID] = append([]int(nil), categoryIDs...)
	}
}

// SetPrice changes the live price of a product.
func (s *Store) SetPrice(productID int, price, discounted decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.d.products[productID]
	p.Price, p.DiscountedPrice = price, discounted
	s.d.products[productID] = p
}

func (s *Store) AddAttribute(a catalog.Attribute, values ...catalog.AttributeValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.attributes[a.AttributeID] = a
	for _, v := range values {
		s.d.attrValues[v.AttributeValueID] = attrValue{AttributeID: a.AttributeID, AttributeValue: v}
	}
}

func (s *Store) LinkAttributeValue(productID, valueID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.productValues[productID] = append(s.d.productValues[productID], valueID)
}

func (s *Store) AddTax(t tax.Tax) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.taxes[t.TaxID] = t
}

func (s *Store) AddRegion(r shipping.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.regions[r.ShippingRegionID] = r
}

func (s *Store) AddMethod(m shipping.Method) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.methods[m.ShippingID] = m
}

// Counts reports row counts per table for assertions.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, d := range s.d.details {
		n += len(d)
	}
	return map[string]int{
		"customer":      len(s.d.customers),
		"shopping_cart": len(s.d.cart),
		"orders":        len(s.d.orders),
		"order_detail":  n,
		"review":        len(s.d.reviews),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Demo returns a store with a small catalog plus the standard tax and
// shipping rows.
func Demo() *Store {
	s := New()
	s.AddDepartment(catalog.Department{DepartmentID: 1, Name: "Regional", Description: "Proud of your country?"})
	s.AddDepartment(catalog.Department{DepartmentID: 2, Name: "Nature", Description: "Find beautiful T-shirts with animals and flowers."})
	s.AddDepartment(catalog.Department{DepartmentID: 3, Name: "Seasonal", Description: "Each time of the year has a special flavor."})
	s.AddCategory(catalog.Category{CategoryID: 1, DepartmentID: 1, Name: "French", Description: "The French have always had an eye for beauty."})
	s.AddCategory(catalog.Category{CategoryID: 2, DepartmentID: 1, Name: "Italian", Description: "The full and resplendent treasure chest of art."})
	s.AddCategory(catalog.Category{CategoryID: 3, DepartmentID: 2, Name: "Animal", Description: "Our ever-growing selection of beautiful animal T-shirts."})

	s.AddProduct(catalog.Product{
		ProductID: 1, Name: "Arc d'Triomphe",
		Description: "This beautiful and iconic T-shirt will no doubt lead you to your own triumph.",
		Price:       dec("14.99"), DiscountedPrice: dec("0.00"),
		Image: "arc-d-triomphe.gif", Image2: "arc-d-triomphe-2.gif", Thumbnail: "arc-d-triomphe-thumbnail.gif",
	}, 1)
	s.AddProduct(catalog.Product{
		ProductID: 2, Name: "Chartres Cathedral",
		Description: "The Fur Merchants. Not all the beautiful stained glass in the great cathedrals depicts saints and angels!",
		Price:       dec("16.95"), DiscountedPrice: dec("15.95"),
		Image: "chartres-cathedral.gif", Image2: "chartres-cathedral-2.gif", Thumbnail: "chartres-cathedral-thumbnail.gif",
	}, 1)
	s.AddProduct(catalog.Product{
		ProductID: 3, Name: "Coat of Arms",
		Description: "There's good reason why the ship plays a prominent part on this shield!",
		Price:       dec("14.50"), DiscountedPrice: dec("0.00"),
		Image: "coat-of-arms.gif", Image2: "coat-of-arms-2.gif", Thumbnail: "coat-of-arms-thumbnail.gif",
	}, 1, 2)
	s.AddProduct(catalog.Product{
		ProductID: 4, Name: "Gallic Cock",
		Description: "This fancy chicken is perhaps the most beloved of all French symbols.",
		Price:       dec("18.99"), DiscountedPrice: dec("16.99"),
		Image: "gallic-cock.gif", Image2: "gallic-cock-2.gif", Thumbnail: "gallic-cock-thumbnail.gif",
	}, 1, 3)

	s.AddAttribute(catalog.Attribute{AttributeID: 1, Name: "Size"},
		catalog.AttributeValue{AttributeValueID: 1, Value: "S"},
		catalog.AttributeValue{AttributeValueID: 2, Value: "M"},
		catalog.AttributeValue{AttributeValueID: 3, Value: "L"})
	s.AddAttribute(catalog.Attribute{AttributeID: 2, Name: "Color"},
		catalog.AttributeValue{AttributeValueID: 6, Value: "White"},
		catalog.AttributeValue{AttributeValueID: 7, Value: "Black"})
	for _, v := range []int{1, 2, 3, 6, 7} {
		s.LinkAttributeValue(1, v)
	}

	s.AddTax(tax.Tax{TaxID: 1, TaxType: "Sales Tax at 8.5%", TaxPercentage: dec("8.50")})
	s.AddTax(tax.Tax{TaxID: 2, TaxType: "No Tax", TaxPercentage: dec("0.00")})
	s.AddRegion(shipping.Region{ShippingRegionID: 1, ShippingRegion: "Please Select"})
	s.AddRegion(shipping.Region{ShippingRegionID: 2, ShippingRegion: "US / Canada"})
	s.AddRegion(shipping.Region{ShippingRegionID: 3, ShippingRegion: "Europe"})
	s.AddMethod(shipping.Method{ShippingID: 1, ShippingType: "Next Day Delivery ($20)", ShippingCost: dec("20.00"), ShippingRegionID: 2})
	s.AddMethod(shipping.Method{ShippingID: 2, ShippingType: "3-4 Days ($10)", ShippingCost: dec("10.00"), ShippingRegionID: 2})
	s.AddMethod(shipping.Method{ShippingID: 3, ShippingType: "7 Days ($5)", ShippingCost: dec("5.00"), ShippingRegionID: 2})
	s.AddMethod(shipping.Method{ShippingID: 4, ShippingType: "By air (7 days, $25)", ShippingCost: dec("25.00"), ShippingRegionID: 3})
	return s
}
