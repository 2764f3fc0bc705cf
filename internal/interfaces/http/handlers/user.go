// internal/interfaces/http/handlers/user.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/domain/order"
	"github.com/your-org/store-backend/internal/domain/user"
	"github.com/your-org/store-backend/internal/interfaces/http/middleware"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// UserHandler handles account and session endpoints
type UserHandler struct {
	userService  *user.Service
	orderService *order.Service
	config       *config.Config
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService:  user.NewService(db, cfg),
		orderService: order.NewService(db, cfg),
		config:       cfg,
	}
}

// Register handles POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	newUser, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"user":   newUser,
	})
}

// Login handles POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	token, u, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  token,
		"user":   u,
	})
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"users":  users,
	})
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	u, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   u,
	})
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	callerID, _ := middleware.GetUserIDFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c, err)
		return
	}

	u, err := h.userService.Update(c.Request.Context(), callerID, id, &req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   u,
	})
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	callerID, _ := middleware.GetUserIDFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), callerID, id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// CheckToken handles GET /users/check-token
func (h *UserHandler) CheckToken(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	u, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   u,
	})
}

// MyProducts handles GET /users/me
func (h *UserHandler) MyProducts(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	products, err := h.userService.Products(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"products": products,
	})
}

// MyOrders handles GET /users/orders
func (h *UserHandler) MyOrders(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	orders, err := h.orderService.ForUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"orders": orders,
	})
}

// MyOrder handles GET /users/orders/:id
func (h *UserHandler) MyOrder(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	o, err := h.orderService.ForUserByID(c.Request.Context(), userID, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"order":  o,
	})
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.Errorf(apperrors.KindValidation, "invalid %s parameter", name)
	}
	return uint(id), nil
}
