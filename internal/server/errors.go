package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	productdomain "github.com/freshstock/freshstock/internal/product/domain"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorHandlingMiddleware converts handler errors into the wire shape:
// {"status":"error","message":...} with 400 for validation failures and 500
// for everything else.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, statusResponse) {
	var vErr *productdomain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, statusResponse{
			Status:  "error",
			Message: vErr.Message,
		}
	}

	return http.StatusInternalServerError, statusResponse{
		Status:  "error",
		Message: err.Error(),
	}
}
