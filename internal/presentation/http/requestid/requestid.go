// Package requestid holds the request ID shared by the logging middleware,
// the JSON envelope and handler logs.
package requestid

import "github.com/gin-gonic/gin"

const (
	// Key is the gin context key holding the request ID
	Key = "request_id"
	// Header carries the request ID in and out of the service
	Header = "X-Request-ID"
)

// Get returns the request ID stored on c, or "" outside the logging middleware
func Get(c *gin.Context) string {
	return c.GetString(Key)
}
