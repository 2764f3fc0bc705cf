// internal/interfaces/http/handlers/helper.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
)

// fail renders an error with the HTTP status its kind carries
func fail(c *gin.Context, err error) {
	c.JSON(apperrors.StatusOf(err), gin.H{
		"status":  "fail",
		"message": apperrors.MessageOf(err),
	})
}

// failBinding renders a request binding/validation error
func failBinding(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "fail",
		"message": "invalid request data",
		"details": err.Error(),
	})
}
