// internal/ui/rest/router/technical.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/khedhrije/items-archetype/pkg/monitoring"
)

// RegisterTechnicalRoutes wires health and diagnostics endpoints
// under the /api group (technical / ops-focused).
func RegisterTechnicalRoutes(api *gin.RouterGroup, checksHandler monitoring.Handler) {
	// Basic health/info
	api.GET("/livez", checksHandler.Livez())
	api.GET("/readyz", checksHandler.Readyz())
	api.GET("/healthz", checksHandler.Healthz())
	api.GET("/version", checksHandler.Version())

	// Server information
	api.GET("/server", checksHandler.ServerInfo())

	// Check endpoints
	checks := api.Group("/check")
	{
		checks.GET("/database", checksHandler.Check())
		checks.GET("/metrics", checksHandler.Metrics())
	}
}
