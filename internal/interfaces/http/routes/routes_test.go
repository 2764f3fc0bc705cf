// internal/interfaces/http/routes/routes_test.go
package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/store-backend/internal/interfaces/http/routes"
	"github.com/your-org/store-backend/internal/testutil"
	"gorm.io/gorm"
)

type apiFixture struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	cfg := testutil.NewConfig()

	engine := gin.New()
	routes.SetupRoutes(engine.Group("/api/v1"), db, cfg)

	return &apiFixture{t: t, engine: engine, db: db}
}

func (f *apiFixture) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	f.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	f.t.Helper()

	var out map[string]interface{}
	require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// register creates an account through the API and returns its login token.
func (f *apiFixture) register(username, email, role string) string {
	f.t.Helper()

	rec := f.request(http.MethodPost, "/api/v1/users", "", gin.H{
		"username": username,
		"email":    email,
		"password": "Secret123!",
		"role":     role,
	})
	require.Equal(f.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.request(http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email":    email,
		"password": "Secret123!",
	})
	require.Equal(f.t, http.StatusOK, rec.Code, rec.Body.String())

	token, ok := f.decode(rec)["token"].(string)
	require.True(f.t, ok, "login response has no token")
	return token
}

func (f *apiFixture) createCategory(adminToken, name string) uint {
	f.t.Helper()

	rec := f.request(http.MethodPost, "/api/v1/products/categories", adminToken, gin.H{
		"name": name,
	})
	require.Equal(f.t, http.StatusCreated, rec.Code, rec.Body.String())

	category := f.decode(rec)["category"].(map[string]interface{})
	return uint(category["id"].(float64))
}

func (f *apiFixture) createProduct(token string, categoryID uint, title string, price int64, quantity int) uint {
	f.t.Helper()

	rec := f.request(http.MethodPost, "/api/v1/products", token, gin.H{
		"title":       title,
		"description": "test product",
		"price":       price,
		"quantity":    quantity,
		"categoryId":  categoryID,
	})
	require.Equal(f.t, http.StatusCreated, rec.Code, rec.Body.String())

	prod := f.decode(rec)["product"].(map[string]interface{})
	return uint(prod["id"].(float64))
}

func TestCartEndpoints_FullPurchaseFlow(t *testing.T) {
	f := newAPIFixture(t)

	admin := f.register("admin", "admin@example.com", "admin")
	seller := f.register("seller", "seller@example.com", "")
	buyer := f.register("buyer", "buyer@example.com", "")

	categoryID := f.createCategory(admin, "Electronics")
	productID := f.createProduct(seller, categoryID, "Headphones", 1000, 5)

	// Empty state
	rec := f.request(http.MethodGet, "/api/v1/cart", buyer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Add 3 units
	rec = f.request(http.MethodPost, "/api/v1/cart/add-product", buyer, gin.H{
		"productId": productID,
		"quantity":  3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Duplicate add is rejected
	rec = f.request(http.MethodPost, "/api/v1/cart/add-product", buyer, gin.H{
		"productId": productID,
		"quantity":  1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Drop to 2 units
	rec = f.request(http.MethodPatch, "/api/v1/cart/update-cart", buyer, gin.H{
		"productId": productID,
		"newQty":    2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Settle
	rec = f.request(http.MethodPost, "/api/v1/cart/purchase", buyer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	placed := f.decode(rec)["order"].(map[string]interface{})
	assert.Equal(t, float64(2000), placed["total_price"])

	// Order is visible under the buyer's purchases
	rec = f.request(http.MethodGet, "/api/v1/users/orders", buyer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Purchased cart is gone; a second purchase has nothing to settle
	rec = f.request(http.MethodPost, "/api/v1/cart/purchase", buyer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Stock is down to 3, visible on the public product endpoint
	rec = f.request(http.MethodGet, fmt.Sprintf("/api/v1/products/%d", productID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	prod := f.decode(rec)["product"].(map[string]interface{})
	assert.Equal(t, float64(3), prod["quantity"])
}

func TestCartEndpoints_RemoveProduct(t *testing.T) {
	f := newAPIFixture(t)

	admin := f.register("admin", "admin@example.com", "admin")
	seller := f.register("seller", "seller@example.com", "")
	buyer := f.register("buyer", "buyer@example.com", "")

	categoryID := f.createCategory(admin, "Books")
	productID := f.createProduct(seller, categoryID, "Novel", 500, 10)

	rec := f.request(http.MethodPost, "/api/v1/cart/add-product", buyer, gin.H{
		"productId": productID,
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.request(http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", productID), buyer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Gone from the active view
	rec = f.request(http.MethodGet, "/api/v1/cart", buyer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c := f.decode(rec)["cart"].(map[string]interface{})
	assert.Empty(t, c["items"])

	// Removing again is a 404
	rec = f.request(http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", productID), buyer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartEndpoints_RequireAuth(t *testing.T) {
	f := newAPIFixture(t)

	assert.Equal(t, http.StatusUnauthorized,
		f.request(http.MethodGet, "/api/v1/cart", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		f.request(http.MethodPost, "/api/v1/cart/purchase", "garbage-token", nil).Code)
}

func TestAddProduct_InsufficientStock(t *testing.T) {
	f := newAPIFixture(t)

	admin := f.register("admin", "admin@example.com", "admin")
	seller := f.register("seller", "seller@example.com", "")
	buyer := f.register("buyer", "buyer@example.com", "")

	categoryID := f.createCategory(admin, "Games")
	productID := f.createProduct(seller, categoryID, "Console", 30000, 2)

	rec := f.request(http.MethodPost, "/api/v1/cart/add-product", buyer, gin.H{
		"productId": productID,
		"quantity":  5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "only has 2 items")
}

func TestCategoryEndpoints_AdminOnly(t *testing.T) {
	f := newAPIFixture(t)

	customer := f.register("customer", "customer@example.com", "")

	rec := f.request(http.MethodPost, "/api/v1/products/categories", customer, gin.H{
		"name": "Electronics",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Listing is public
	rec = f.request(http.MethodGet, "/api/v1/products/categories", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductEndpoints_OwnershipAndValidation(t *testing.T) {
	f := newAPIFixture(t)

	admin := f.register("admin", "admin@example.com", "admin")
	seller := f.register("seller", "seller@example.com", "")
	other := f.register("other", "other@example.com", "")

	categoryID := f.createCategory(admin, "Electronics")
	productID := f.createProduct(seller, categoryID, "Headphones", 1000, 5)

	// Only the owner may update
	rec := f.request(http.MethodPatch, fmt.Sprintf("/api/v1/products/%d", productID), other, gin.H{
		"price": 1,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.request(http.MethodPatch, fmt.Sprintf("/api/v1/products/%d", productID), seller, gin.H{
		"price": 1500,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Malformed id parameter
	rec = f.request(http.MethodGet, "/api/v1/products/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Binding failure surfaces as a validation error
	rec = f.request(http.MethodPost, "/api/v1/products", seller, gin.H{
		"title": "incomplete",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserEndpoints_ListIsAdminOnly(t *testing.T) {
	f := newAPIFixture(t)

	admin := f.register("admin", "admin@example.com", "admin")
	customer := f.register("customer", "customer@example.com", "")

	assert.Equal(t, http.StatusForbidden,
		f.request(http.MethodGet, "/api/v1/users", customer, nil).Code)
	assert.Equal(t, http.StatusOK,
		f.request(http.MethodGet, "/api/v1/users", admin, nil).Code)

	// Token introspection works for any authenticated user
	assert.Equal(t, http.StatusOK,
		f.request(http.MethodGet, "/api/v1/users/check-token", customer, nil).Code)
}
