package middleware

import (
	"time"

	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with the caller masked.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.LogAPIRequest(c.Request.Method, c.Request.URL.Path, GetUserID(c), c.Writer.Status(), time.Since(start).String())
	}
}
