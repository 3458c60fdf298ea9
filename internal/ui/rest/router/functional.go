// internal/ui/rest/router/functional.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/khedhrije/items-archetype/internal/ui/rest/handlers"
)

// RegisterFunctionalRoutes wires the business endpoints. Trailing slashes
// are part of the registered paths; gin redirects the slash-less form.
// Keep tech/ops endpoints in technical.go.
func RegisterFunctionalRoutes(root *gin.RouterGroup, h handlers.Handler) {
	root.GET("/", h.Root())

	root.GET("/items/:item_id", h.ReadItem())
	root.POST("/items/", h.CreateItem())

	// A single registration: gin panics on duplicate method+path.
	root.GET("/greet/", h.Greet())
}
