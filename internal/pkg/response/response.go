package response

import "github.com/gin-gonic/gin"

// JSON writes a success body as the raw record, matching the public API
// contract (no envelope around entities).
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes a {"message": ...} body. Used for every non-2xx response
// and for delete confirmations.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}
