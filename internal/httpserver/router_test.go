package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"inkpaper-express/internal/domain"
	cartrepo "inkpaper-express/internal/repository/cart"
	orderrepo "inkpaper-express/internal/repository/order"
	productrepo "inkpaper-express/internal/repository/product"
	cartsvc "inkpaper-express/internal/service/cart"
	catalogsvc "inkpaper-express/internal/service/catalog"
	ordersvc "inkpaper-express/internal/service/order"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type testEnv struct {
	router   *gin.Engine
	products productrepo.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := productrepo.NewMemory()
	orders := orderrepo.NewMemory()
	carts := cartrepo.NewMemory()

	logger := logDiscard()
	router := buildRouter(logger, nil, Deps{
		CatalogSvc: catalogsvc.New(products),
		CartSvc:    cartsvc.New(carts, products),
		OrderSvc:   ordersvc.New(orders, carts, products, logger),
		BaseURL:    "https://inkpaperexpress.com",
	})
	return &testEnv{router: router, products: products}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seedProduct(t *testing.T, name, price string, stock int) *domain.Product {
	t.Helper()
	p, err := e.products.Create(context.Background(), domain.Product{
		Name:         name,
		Description:  "test product",
		Price:        price,
		Category:     "ink",
		Brand:        "HP",
		ImageURL:     "https://img.test/p.jpg",
		Stock:        stock,
		IsActive:     true,
		DeliveryTime: "Same Day",
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestListProducts_EmptyIsJSONArray(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestCreateProduct_DefaultsApplied(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/products",
		`{"name":"HP 64 Ink","description":"Tri-color","price":"34.99","category":"ink","imageUrl":"https://img.test/64.jpg"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var p domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != 1 || p.Brand != "HP" || !p.IsActive || p.DeliveryTime != "Same Day" {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestCreateProduct_FieldErrors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/products",
		`{"name":"","description":"d","price":"12.999","category":"toner","imageUrl":"u"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Message string              `json:"message"`
		Errors  []domain.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "Invalid input" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if len(resp.Errors) != 3 {
		t.Fatalf("expected 3 field errors (name, price, category), got %+v", resp.Errors)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products/42", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product not found") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGetProduct_BadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products/abc", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct(t, "HP 65 Ink", "24.99", 10)

	rec := env.do(t, http.MethodDelete, "/api/products/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/api/products/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete of %d, got %d", p.ID, rec.Code)
	}
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)

	rec := env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var item domain.CartItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", item.Quantity)
	}

	// Same product merges into the existing row.
	rec = env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1,"quantity":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/cart/s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var entries []domain.CartEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 1 || entries[0].Quantity != 3 {
		t.Fatalf("expected one merged row with quantity 3, got %+v", entries)
	}
	if entries[0].Product == nil || entries[0].Product.Name != "HP 64 Ink" {
		t.Fatalf("expected joined product, got %+v", entries[0].Product)
	}
}

func TestAddToCart_RejectsZeroQuantity(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)

	rec := env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1,"quantity":0}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateCartItem_MissingQuantity(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)
	env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1}`)

	rec := env.do(t, http.MethodPut, "/api/cart/1", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid quantity") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRemoveCartItem_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/api/cart/99", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Cart item not found") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestClearCartRoute(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)
	env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1}`)

	rec := env.do(t, http.MethodDelete, "/api/cart/session/s1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/cart/s1", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty cart after clear, got %s", rec.Body.String())
	}
}

func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)
	env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1,"quantity":3}`)

	rec := env.do(t, http.MethodPost, "/api/orders",
		`{"customerName":"Jane Roe","customerEmail":"jane@example.com","customerPhone":"555-0100","shippingAddress":"1 Main St","sessionId":"s1"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var order domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// 45.00 subtotal + 9.99 shipping + 3.60 tax.
	if order.Total != "58.59" {
		t.Fatalf("expected total 58.59, got %s", order.Total)
	}
	if order.Status != domain.StatusProcessing {
		t.Fatalf("expected status %s, got %s", domain.StatusProcessing, order.Status)
	}

	// Checkout empties the session's cart.
	rec = env.do(t, http.MethodGet, "/api/cart/s1", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected cart cleared after checkout, got %s", rec.Body.String())
	}
}

func TestCheckout_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/orders", `{"customerEmail":"not-an-email"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Errors []domain.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Errors) != 5 {
		t.Fatalf("expected 5 field errors, got %+v", resp.Errors)
	}
}

func TestUpdateOrderStatus_IllegalTransition(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)
	env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1}`)
	env.do(t, http.MethodPost, "/api/orders",
		`{"customerName":"Jane Roe","customerEmail":"jane@example.com","customerPhone":"555-0100","shippingAddress":"1 Main St","sessionId":"s1"}`)

	rec := env.do(t, http.MethodPut, "/api/orders/1/status", `{"status":"Delivered"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "cannot transition") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestTrackRoute(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)
	env.do(t, http.MethodPost, "/api/cart", `{"sessionId":"s1","productId":1}`)
	env.do(t, http.MethodPost, "/api/orders",
		`{"customerName":"Jane Roe","customerEmail":"jane@example.com","customerPhone":"555-0100","shippingAddress":"1 Main St","sessionId":"s1"}`)

	rec := env.do(t, http.MethodGet, "/api/orders/track/jane@example.com", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var tracked ordersvc.TrackedOrder
	if err := json.Unmarshal(rec.Body.Bytes(), &tracked); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tracked.TrackingNumber != "USPS000000000001" {
		t.Fatalf("unexpected tracking number %q", tracked.TrackingNumber)
	}
	if len(tracked.Timeline) == 0 {
		t.Fatalf("expected a timeline")
	}

	// Anything other than "track" in the first segment is a 404.
	rec = env.do(t, http.MethodGet, "/api/orders/1/bogus", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/orders/track/nobody", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown identifier, got %d", rec.Code)
	}
}

func TestSitemapAndRobots(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "HP 64 Ink", "15.00", 20)

	rec := env.do(t, http.MethodGet, "/sitemap.xml", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "https://inkpaperexpress.com/product/1") {
		t.Fatalf("expected product url in sitemap, got %s", rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/robots.txt", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Sitemap: https://inkpaperexpress.com/sitemap.xml") {
		t.Fatalf("expected sitemap line, got %s", rec.Body.String())
	}
}

func TestHealthAndReady_MemoryMode(t *testing.T) {
	env := newTestEnv(t)

	if rec := env.do(t, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodGet, "/readyz", ""); rec.Code != http.StatusOK {
		t.Fatalf("readyz: expected 200, got %d", rec.Code)
	}
}
