package responses

import "github.com/gin-gonic/gin"

// Message replies with {"message": ...}. Every non-payload response on the
// API uses this shape.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error replies with the message plus the underlying error text, for the
// opaque 5xx cases.
func Error(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(statusCode, body)
}

// ValidationFailed aggregates field-level messages for a 400.
func ValidationFailed(c *gin.Context, statusCode int, errs []string) {
	c.JSON(statusCode, gin.H{
		"message": "Validation failed",
		"errors":  errs,
	})
}
