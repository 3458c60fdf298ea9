// internal/ui/rest/router/router.go
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/items-archetype/internal/ui/rest/handlers"
	"github.com/khedhrije/items-archetype/internal/ui/rest/middleware"
	"github.com/khedhrije/items-archetype/pkg/metrics"
	"github.com/khedhrije/items-archetype/pkg/monitoring"
)

// Options tunes the engine built by CreateRouter.
type Options struct {
	TrustedProxies []string
	Logger         *slog.Logger
	// MaxBodyBytes caps request bodies; 0 disables the limit.
	MaxBodyBytes int64
	// Title and Version are published in the OpenAPI document.
	Title   string
	Version string
}

// Dependencies bundles the route families' handlers.
type Dependencies struct {
	Checks  monitoring.Handler
	Items   handlers.Handler
	Metrics *metrics.Metrics
}

// CreateRouter builds the Gin engine and delegates route registration
// to the technical, functional, and frontend registrars.
func CreateRouter(deps Dependencies, opts ...Options) (*gin.Engine, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	if err := r.SetTrustedProxies(opt.TrustedProxies); err != nil {
		return nil, err
	}

	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(opt.Logger),
		deps.Metrics.Middleware(),
		middleware.Recovery(opt.Logger),
	)
	if opt.MaxBodyBytes > 0 {
		r.Use(middleware.BodyLimit(opt.MaxBodyBytes))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	// Ops endpoints live under /api; business routes sit at the root.
	api := r.Group("/api")

	// Register endpoint families
	RegisterTechnicalRoutes(api, deps.Checks)
	r.GET("/metrics", deps.Metrics.Handler())
	RegisterFunctionalRoutes(&r.RouterGroup, deps.Items)
	if err := RegisterFrontendRoutes(r, opt.Title, opt.Version); err != nil {
		return nil, err
	}

	return r, nil
}
