package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}, message string) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(code, body)
}

// JSONError writes {success:false, error:<code>, message, details?}.
func JSONError(c *gin.Context, code int, errCode, message string, details map[string]string) {
	body := gin.H{"success": false, "error": errCode, "message": message}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(code, body)
}
