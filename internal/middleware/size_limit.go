package middleware

import (
	"net/http"

	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
	"github.com/gin-gonic/gin"
)

// SizeLimit caps the request body at maxBodyBytes. Requests that declare a
// larger Content-Length are rejected up front with 413; bodies that exceed
// the cap while streaming hit http.MaxBytesError in the handler's decoder.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Request body too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
