// README: CORS middleware; development configuration allowing every origin, method and header.
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	allowHeadersHeader   = "Access-Control-Allow-Headers"
	requestHeadersHeader = "Access-Control-Request-Headers"
)

// CORS echoes any Origin back with credentials allowed. Preflight requests are
// answered with 204 before routing, and the requested headers are echoed back
// since browsers do not treat "*" as a wildcard on credentialed requests.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		requested := c.GetHeader(requestHeadersHeader)
		if c.Request.Method != http.MethodOptions || requested == "" {
			handler(c)
			return
		}

		w := c.Writer
		c.Writer = &allowHeadersWriter{ResponseWriter: w, allow: requested}
		handler(c)
		c.Writer = w
	}
}

// allowHeadersWriter overrides Access-Control-Allow-Headers right before the
// status line is written; the cors handler sets its own value first.
type allowHeadersWriter struct {
	gin.ResponseWriter
	allow string
}

func (w *allowHeadersWriter) WriteHeaderNow() {
	w.Header().Set(allowHeadersHeader, w.allow)
	w.ResponseWriter.WriteHeaderNow()
}
