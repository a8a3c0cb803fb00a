package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipart framing around the file part
const multipartOverhead = 1 << 20

// LimitBody caps the request body so an oversized upload fails while reading
// instead of being buffered to disk first.
func LimitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
	}
}
