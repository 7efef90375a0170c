package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varun-k1411/gipl-quality-alert/pkg/response"
)

// BodyLimit caps the request body size for every route.
// maxBytes must cover a full multipart submit: form fields plus two
// camera-size JPEG uploads.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
				return
			}
		}
	}
}
