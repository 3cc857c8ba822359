// README: Recovery middleware; converts panics into a JSON 500.
package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[HTTP] request_id=%s panic: %v", GetRequestID(c), rec)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
			}
		}()
		c.Next()
	}
}
