// Package endpoint provides built-in HTTP endpoints.
package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/viprogramm/audio11eleven/version"
)

// Health returns a handler that reports basic service liveness.
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   serviceName,
			"version":   version.Short(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
