// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/domain/cart"
	"github.com/your-org/store-backend/internal/interfaces/http/middleware"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, cfg),
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		fail(c, apperrors.E(apperrors.KindUnauthorized, "authentication required"))
		return
	}

	activeCart, err := h.cartService.GetActiveCart(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"cart":   activeCart,
	})
}

// AddProduct handles POST /cart/add-product
func (h *CartHandler) AddProduct(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		fail(c, apperrors.E(apperrors.KindUnauthorized, "authentication required"))
		return
	}

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	item, err := h.cartService.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"item":   item,
	})
}

// UpdateCart handles PATCH /cart/update-cart
func (h *CartHandler) UpdateCart(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		fail(c, apperrors.E(apperrors.KindUnauthorized, "authentication required"))
		return
	}

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	item, err := h.cartService.UpdateItem(c.Request.Context(), userID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"item":   item,
	})
}

// RemoveProduct handles DELETE /cart/:productId
func (h *CartHandler) RemoveProduct(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		fail(c, apperrors.E(apperrors.KindUnauthorized, "authentication required"))
		return
	}

	productID, err := parseIDParam(c, "productId")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "product removed from cart",
	})
}

// Purchase handles POST /cart/purchase
func (h *CartHandler) Purchase(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		fail(c, apperrors.E(apperrors.KindUnauthorized, "authentication required"))
		return
	}

	purchase, err := h.cartService.Purchase(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"order":  purchase,
	})
}
