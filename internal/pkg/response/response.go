package response

import (
	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// CustomError accepts a string, an error or a validation map as the message.
// Non-string messages are moved to details.
func CustomError(c *gin.Context, statusCode int, code string, message any) {
	switch m := message.(type) {
	case string:
		Error(c, statusCode, code, m)
	case error:
		Error(c, statusCode, code, m.Error())
	default:
		ErrorWithDetails(c, statusCode, code, code, m)
	}
}

// Abort writes an error envelope and stops the handler chain
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}
