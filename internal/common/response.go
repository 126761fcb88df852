package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goodgifts/goodgifts-backend/pkg/logger"
)

// OK returns a success response with the given payload fields merged
// into the {success: true} envelope.
func OK(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Message returns a plain success acknowledgement
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// Fail returns an error response with an explicit status
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// FromError maps a service error onto the response envelope. Business
// errors carry a specific status; anything else is logged and collapsed
// to a 500 with no detail leaked to the client.
func FromError(c *gin.Context, err error) {
	status, message := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.Get().Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("internal error")
	}
	Fail(c, status, message)
}
