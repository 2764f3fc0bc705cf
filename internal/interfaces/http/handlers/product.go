// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/domain/product"
	"github.com/your-org/store-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *product.Service
	config         *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(db *gorm.DB, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		productService: product.NewService(db, cfg),
		config:         cfg,
	}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"products": products,
	})
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	prod, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"product": prod,
	})
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req product.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	prod, err := h.productService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"product": prod,
	})
}

// Update handles PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req product.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	prod, err := h.productService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"product": prod,
	})
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.productService.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}
