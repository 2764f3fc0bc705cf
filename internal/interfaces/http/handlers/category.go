// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/domain/product"
	"gorm.io/gorm"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService *product.CategoryService
	config          *config.Config
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(db *gorm.DB, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{
		categoryService: product.NewCategoryService(db, cfg),
		config:          cfg,
	}
}

// List handles GET /products/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"categories": categories,
	})
}

// Create handles POST /products/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req product.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"category": category,
	})
}

// Update handles PATCH /products/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req product.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"category": category,
	})
}
