// Package respond shapes every API reply into the shared envelope.
package respond

import "github.com/gin-gonic/gin"

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message string, detail string) {
	if detail == "" {
		detail = message
	}
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// Abort writes an error envelope and stops the handler chain. For middleware.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   message,
	})
}
