package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/shop-api/internal/audit"
	"github.com/MikeMC777/shop-api/internal/auth"
	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/customer"
	"github.com/MikeMC777/shop-api/internal/httpx"
	"github.com/MikeMC777/shop-api/internal/idempotency"
	"github.com/MikeMC777/shop-api/internal/memstore"
	"github.com/MikeMC777/shop-api/internal/order"
	"github.com/MikeMC777/shop-api/internal/paging"
	"github.com/MikeMC777/shop-api/internal/review"
)

//
// ---------- HELPERS ----------
//

type testServer struct {
	r     *gin.Engine
	store *memstore.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	st := memstore.Demo()
	// productos de 10.00 y 5.00 para el escenario de checkout
	st.AddProduct(catalog.Product{ProductID: 10, Name: "Plain Tee", Price: decimal.RequireFromString("10.00"), DiscountedPrice: decimal.Zero})
	st.AddProduct(catalog.Product{ProductID: 11, Name: "Sale Tee", Price: decimal.RequireFromString("5.00"), DiscountedPrice: decimal.Zero})

	tokens := auth.NewTokens("test-secret", 24*time.Hour)
	rec := &audit.Memory{}
	svc := services{
		catalog:   catalog.NewService(st.Catalog()),
		customers: customer.NewService(st.Customers(), auth.Bcrypt{Cost: bcrypt.MinCost}, tokens, st.Shipping(), rec, zap.NewNop()),
		carts:     cart.NewService(st.Carts()),
		orders:    order.NewService(st.Orders(), idempotency.NewMemory(), rec, zap.NewNop()),
		reviews:   review.NewService(st.Reviews()),
		taxes:     st.Taxes(),
		shipping:  st.Shipping(),
		tokens:    tokens,
	}
	return &testServer{r: newRouter(zap.NewNop(), svc), store: st}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

// register crea un cliente y devuelve el header Authorization listo para usar.
func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Ana","email":%q,"password":"secret1"}`, email)
	w := s.do(t, http.MethodPost, "/customers", body, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d body=%s", w.Code, w.Body.String())
	}
	var sess customer.Session
	mustDecode(t, w, &sess)
	return sess.AccessToken
}

func mustDecode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("json inválido: %v body=%s", err, w.Body.String())
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body httpx.ErrorBody
	mustDecode(t, w, &body)
	return body.Error.Code
}

//
// ---------- TESTS ----------
//

func TestHealthz(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/healthz", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

// cada ruta del router debe estar documentada en /swagger
func TestSwagger_DocumentsEveryRoute(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("swag.ReadDoc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("swagger inválido: %v", err)
	}

	param := regexp.MustCompile(`:(\w+)`)
	for _, rt := range s.r.Routes() {
		if rt.Path == "/healthz" || strings.HasPrefix(rt.Path, "/swagger") {
			continue
		}
		path := param.ReplaceAllString(rt.Path, "{$1}")
		if _, ok := doc.Paths[path][strings.ToLower(rt.Method)]; !ok {
			t.Errorf("%s %s sin documentar", rt.Method, path)
		}
	}
}

func TestUnknownRoute_RendersErrorBody(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/nope", "", "")
	if w.Code != http.StatusNotFound || errorCode(t, w) != "NOT_FOUND" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestListProducts_PaginationDefaults(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, q := range []string{"page=0", "page=-5", ""} {
		w := s.do(t, http.MethodGet, "/products?"+q, "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d body=%s", q, w.Code, w.Body.String())
		}
		var res paging.Result[catalog.Product]
		mustDecode(t, w, &res)
		if res.PaginationMeta.CurrentPage != 1 {
			t.Fatalf("%s: currentPage=%d, esperaba 1", q, res.PaginationMeta.CurrentPage)
		}
		if res.PaginationMeta.TotalRecords != 6 || len(res.Rows) != 6 {
			t.Fatalf("%s: meta=%+v rows=%d", q, res.PaginationMeta, len(res.Rows))
		}
	}

	w := s.do(t, http.MethodGet, "/products?page=2&limit=4", "", "")
	var res paging.Result[catalog.Product]
	mustDecode(t, w, &res)
	if res.PaginationMeta.CurrentPageSize != 2 || res.PaginationMeta.TotalPages != 2 {
		t.Fatalf("meta=%+v", res.PaginationMeta)
	}
}

func TestSearchProducts(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/products/search", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (esperaba 400)", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/products/search?query_string=tee,sale&all_words=on", "", "")
	var res paging.Result[catalog.Product]
	mustDecode(t, w, &res)
	if len(res.Rows) != 1 || res.Rows[0].ProductID != 11 {
		t.Fatalf("rows=%+v", res.Rows)
	}
}

func TestCatalogNotFound(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, p := range []string{"/departments/99", "/categories/99", "/products/99", "/attributes/values/99", "/tax/99", "/shipping/regions/99"} {
		w := s.do(t, http.MethodGet, p, "", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: status=%d body=%s", p, w.Code, w.Body.String())
		}
	}
	w := s.do(t, http.MethodGet, "/products/abc", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (esperaba 400)", w.Code, w.Body.String())
	}
}

func TestGetProduct_DecimalIDs(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	// 010 es el producto 10, no el 8 en octal
	w := s.do(t, http.MethodGet, "/products/010", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var p catalog.Product
	mustDecode(t, w, &p)
	if p.ProductID != 10 {
		t.Fatalf("product_id=%d, esperaba 10", p.ProductID)
	}

	for _, bad := range []string{"0x2", "2.0"} {
		w := s.do(t, http.MethodGet, "/products/"+bad, "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d body=%s (esperaba 400)", bad, w.Code, w.Body.String())
		}
	}
}

func TestShippingRegionMethods(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/shipping/regions/2", "", "")
	var rows struct {
		Rows []json.RawMessage `json:"rows"`
	}
	mustDecode(t, w, &rows)
	if len(rows.Rows) != 3 {
		t.Fatalf("rows=%d, esperaba 3", len(rows.Rows))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.register(t, "ana@example.com")

	w := s.do(t, http.MethodPost, "/customers", `{"name":"Otra","email":"ana@example.com","password":"secret2"}`, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s (esperaba 409)", w.Code, w.Body.String())
	}
	if n := s.store.Counts()["customer"]; n != 1 {
		t.Fatalf("customers=%d, esperaba 1", n)
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/customers", `{"name":"Ana","email":"not-an-email","password":"x"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (esperaba 400)", w.Code, w.Body.String())
	}
}

func TestLoginAndProfile(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.register(t, "ana@example.com")

	w := s.do(t, http.MethodPost, "/customers/login", `{"email":"ana@example.com","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s (esperaba 401)", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/customers/login", `{"email":"ana@example.com","password":"secret1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var sess customer.Session
	mustDecode(t, w, &sess)

	if w := s.do(t, http.MethodGet, "/customer", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("sin token: status=%d", w.Code)
	}
	if w := s.do(t, http.MethodGet, "/customer", "", "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("token inválido: status=%d", w.Code)
	}
	w = s.do(t, http.MethodGet, "/customer", "", sess.AccessToken)
	var c customer.Customer
	mustDecode(t, w, &c)
	if w.Code != http.StatusOK || c.Email != "ana@example.com" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateCreditCard_Masked(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.register(t, "ana@example.com")

	w := s.do(t, http.MethodPut, "/customers/creditCard", `{"credit_card":"4242424242424242"}`, token)
	var c customer.Customer
	mustDecode(t, w, &c)
	if w.Code != http.StatusOK || c.CreditCard != "XXXXXXXXXXXX4242" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestCart_MergeAndIdempotentRemove(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	cartID := uuid.NewString()

	var line cart.Line
	for _, q := range []int{2, 3} {
		body := fmt.Sprintf(`{"cart_id":%q,"product_id":10,"attributes":"M","quantity":%d}`, cartID, q)
		w := s.do(t, http.MethodPost, "/shoppingcart/add", body, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		mustDecode(t, w, &line)
	}
	if line.Quantity != 5 {
		t.Fatalf("quantity=%d, esperaba 5", line.Quantity)
	}

	w := s.do(t, http.MethodGet, "/shoppingcart/"+cartID, "", "")
	var c cart.Cart
	mustDecode(t, w, &c)
	if len(c.Rows) != 1 || !c.TotalAmount.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("cart=%+v", c)
	}

	for i, want := range []int64{1, 0} {
		w := s.do(t, http.MethodDelete, fmt.Sprintf("/shoppingcart/removeProduct/%d", line.ItemID), "", "")
		var d cart.Deleted
		mustDecode(t, w, &d)
		if w.Code != http.StatusOK || d.Deleted != want {
			t.Fatalf("intento %d: status=%d body=%s", i, w.Code, w.Body.String())
		}
	}

	w = s.do(t, http.MethodDelete, "/shoppingcart/empty/"+cartID, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestCart_AddValidation(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	bodies := []string{
		`{"cart_id":"c1","product_id":10,"quantity":0}`,
		`{"cart_id":"","product_id":10}`,
		`{"cart_id":"c1","product_id":999}`,
	}
	for _, b := range bodies {
		w := s.do(t, http.MethodPost, "/shoppingcart/add", b, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d body=%s", b, w.Code, w.Body.String())
		}
	}
}

func TestCheckout_Scenario(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.register(t, "ana@example.com")
	cartID := "abc123"

	s.do(t, http.MethodPost, "/shoppingcart/add", `{"cart_id":"abc123","product_id":10,"quantity":2}`, "")
	s.do(t, http.MethodPost, "/shoppingcart/add", `{"cart_id":"abc123","product_id":11,"quantity":1}`, "")

	if w := s.do(t, http.MethodPost, "/orders", `{"cart_id":"abc123","shipping_id":2,"tax_id":1}`, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("sin token: status=%d", w.Code)
	}

	w := s.do(t, http.MethodPost, "/orders", `{"cart_id":"abc123","shipping_id":2,"tax_id":1}`, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var created order.Created
	mustDecode(t, w, &created)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", created.OrderID), "", token)
	var sum order.Summary
	mustDecode(t, w, &sum)
	// 25.00 + 2.13 de impuesto + 10.00 de envío
	if !sum.TotalAmount.Equal(decimal.RequireFromString("37.13")) || len(sum.Rows) != 2 {
		t.Fatalf("summary=%s", w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/shoppingcart/"+cartID, "", "")
	var c cart.Cart
	mustDecode(t, w, &c)
	if len(c.Rows) != 0 {
		t.Fatalf("el carrito debía quedar vacío: %s", w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/orders", `{"cart_id":"abc123","shipping_id":2,"tax_id":1}`, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("segundo checkout: status=%d body=%s (esperaba 400)", w.Code, w.Body.String())
	}
}

func TestCheckout_IdempotencyKey(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.register(t, "ana@example.com")
	s.do(t, http.MethodPost, "/shoppingcart/add", `{"cart_id":"k1","product_id":10}`, "")

	var ids []int
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"cart_id":"k1","shipping_id":1,"tax_id":2}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		req.Header.Set("Idempotency-Key", "same-key")
		w := httptest.NewRecorder()
		s.r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("intento %d: status=%d body=%s", i, w.Code, w.Body.String())
		}
		var created order.Created
		mustDecode(t, w, &created)
		ids = append(ids, created.OrderID)
	}
	if ids[0] != ids[1] {
		t.Fatalf("ids distintos: %v", ids)
	}
}

func TestOrders_OwnershipAndStatus(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ana := s.register(t, "ana@example.com")
	bea := s.register(t, "bea@example.com")
	s.do(t, http.MethodPost, "/shoppingcart/add", `{"cart_id":"c9","product_id":10}`, "")

	w := s.do(t, http.MethodPost, "/orders", `{"cart_id":"c9","shipping_id":1,"tax_id":1}`, ana)
	var created order.Created
	mustDecode(t, w, &created)
	path := fmt.Sprintf("/orders/%d", created.OrderID)

	if w := s.do(t, http.MethodGet, path, "", bea); w.Code != http.StatusNotFound {
		t.Fatalf("orden ajena: status=%d", w.Code)
	}
	if w := s.do(t, http.MethodGet, fmt.Sprintf("/orders/shortDetail/%d", created.OrderID), "", ana); w.Code != http.StatusOK {
		t.Fatalf("short detail: status=%d body=%s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPut, path+"/status", `{"status":"delivered"}`, ana)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (esperaba 400)", w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodPut, path+"/status", `{"status":"paid"}`, ana)
	var o order.Order
	mustDecode(t, w, &o)
	if w.Code != http.StatusOK || o.Status != order.StatusPaid {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/orders/inCustomer", "", bea)
	var list httpx.Rows[order.Order]
	mustDecode(t, w, &list)
	if len(list.Rows) != 0 {
		t.Fatalf("bea no tiene órdenes: %s", w.Body.String())
	}
}

func TestReviews(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	token := s.register(t, "ana@example.com")

	w := s.do(t, http.MethodPost, "/products/1/reviews", `{"review":"Linda","rating":4}`, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodPost, "/products/1/reviews", `{"review":"Otra vez","rating":5}`, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s (esperaba 409)", w.Code, w.Body.String())
	}
	w = s.do(t, http.MethodPost, "/products/1/reviews", `{"review":"x","rating":9}`, s.register(t, "bea@example.com"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (esperaba 400)", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/products/1/reviews", "", "")
	var list review.List
	mustDecode(t, w, &list)
	if list.Summary.TotalCount != 1 || list.Summary.AverageRating != 4 {
		t.Fatalf("summary=%+v", list.Summary)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}
