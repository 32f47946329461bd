package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONBlocked marks a view the frontend must render as an explicit
// empty/blocked state instead of attempting partial rendering.
func JSONBlocked(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "blocked": true, "error": message})
}
