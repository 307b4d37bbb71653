package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
)

// Payload is the flat response contract used across the API:
// {"success": bool, "message": "...", ...extras}.
type Payload map[string]interface{}

// OK responds with HTTP 200 and a success flag.
func OK(c *gin.Context, message string, extras ...Payload) {
	write(c, http.StatusOK, message, extras...)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, message string, extras ...Payload) {
	write(c, http.StatusCreated, message, extras...)
}

// Error translates any error into the common failure shape. The underlying
// cause never reaches the client; callers log it server-side.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"success": false, "message": appErr.Message})
}

func write(c *gin.Context, status int, message string, extras ...Payload) {
	body := gin.H{"success": true, "message": message}
	for _, extra := range extras {
		for k, v := range extra {
			body[k] = v
		}
	}
	c.JSON(status, body)
}
