package middleware

import (
	"log/slog"
	"net/http"

	"slb-charger-econ/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics and answers with the standard error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Default().Error("panic while handling request",
			slog.String("path", c.Request.URL.Path),
			slog.Any("recovered", recovered))

		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
