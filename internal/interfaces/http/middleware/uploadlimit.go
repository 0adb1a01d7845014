package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitRequestBody caps the request body at maxBytes. Oversized requests are
// rejected with 413 before any handler work. The Content-Length check covers
// well-behaved clients; MaxBytesReader covers chunked or lying ones by
// failing the body read inside form parsing.
func LimitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.HTML(http.StatusRequestEntityTooLarge, "error.html", gin.H{
				"Status":  http.StatusRequestEntityTooLarge,
				"Message": "request entity too large",
			})
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
