// internal/ui/rest/router/frontend.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/khedhrije/items-archetype/pkg/apidocs"
)

// RegisterFrontendRoutes mounts the API documentation pages.
// These are NOT under /api.
func RegisterFrontendRoutes(r *gin.Engine, title, version string) error {
	return apidocs.AttachDocs(r, apidocs.DocsOptions{
		Title:       title,
		Version:     version,
		SpecPath:    "/openapi.json",
		SwaggerPath: "/docs",
		RedocPath:   "/redoc",
	})
}
