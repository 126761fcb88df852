package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/pkg/authclient"
	"github.com/goodgifts/goodgifts-backend/pkg/logger"
)

const userIDKey = "userID"

// AuthRequired validates the bearer credential against the external
// auth service and stores the resolved user ID in the request context.
// One validation call per request, no retry; if the auth service is
// unreachable the request fails with a 500.
func AuthRequired(validator authclient.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false, "message": "Token not provided",
			})
			return
		}

		userID, err := validator.Validate(c.Request.Context(), authorization)
		if err != nil {
			var apiErr *authclient.APIError
			if errors.As(err, &apiErr) {
				// The auth service rejected the credential; pass its
				// verdict through unchanged.
				c.AbortWithStatusJSON(apiErr.Status, gin.H{
					"success": false, "message": apiErr.Message,
				})
				return
			}
			logger.Get().Error().Err(err).Msg("auth service call failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false, "message": "Internal server error",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID extracts the resolved user ID from context
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}
	if str, ok := userID.(string); ok {
		return str
	}
	return ""
}
