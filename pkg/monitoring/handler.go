package monitoring

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/items-archetype/internal/configuration"
)

const (
	statusOK      = "ok"
	statusError   = "error"
	statusSkipped = "skipped"
)

// ====== Public surface ======

type Handler interface {
	// Basic
	Livez() gin.HandlerFunc
	Readyz() gin.HandlerFunc
	Healthz() gin.HandlerFunc
	Version() gin.HandlerFunc
	ServerInfo() gin.HandlerFunc

	// Checks
	Check() gin.HandlerFunc   // database
	Metrics() gin.HandlerFunc // runtime metrics
}

// New constructs a Handler with the provided configuration.
func New(cfg *configuration.AppConfig) Handler {
	return &handler{cfg: cfg, startedAt: time.Now()}
}

// ====== Implementation ======

type handler struct {
	cfg       *configuration.AppConfig
	startedAt time.Time
}

// run executes fn under timeout and writes the check envelope.
func (h *handler) run(c *gin.Context, name string, timeout time.Duration, fn func(ctx context.Context) (Detail, error)) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	detail, err := fn(ctx)
	lat := time.Since(start).Milliseconds()

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    statusError,
			"name":      name,
			"latencyMs": lat,
			"error":     err.Error(),
			"detail":    detail,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    statusOK,
		"name":      name,
		"latencyMs": lat,
		"detail":    detail,
	})
}

// --- basic health/info ---

func (h *handler) Livez() gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(http.StatusOK) }
}

// Readyz reports ready unless a configured database cannot be reached.
func (h *handler) Readyz() gin.HandlerFunc {
	return func(c *gin.Context) {
		db := h.cfg.DatabaseConfig
		if !db.Configured() {
			c.JSON(http.StatusOK, gin.H{
				"status": statusOK,
				"checks": gin.H{"database": statusSkipped},
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if _, err := probeDatabase(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": statusError,
				"checks": gin.H{"database": err.Error()},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": statusOK,
			"checks": gin.H{"database": statusOK},
		})
	}
}

func (h *handler) Healthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   statusOK,
			"version":  h.cfg.AppVersion,
			"revision": h.cfg.AppRevision,
			"builtAt":  h.cfg.AppBuiltAt,
		})
	}
}

func (h *handler) Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":  h.cfg.AppVersion,
			"revision": h.cfg.AppRevision,
			"builtAt":  h.cfg.AppBuiltAt,
		})
	}
}

func (h *handler) ServerInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "server-info", 800*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return ServerInformation(ctx, ServerInfoOptions{
				AppName:   h.cfg.AppName,
				Env:       h.cfg.Env,
				Version:   h.cfg.AppVersion,
				Revision:  h.cfg.AppRevision,
				BuiltAt:   h.cfg.AppBuiltAt,
				StartTime: h.startedAt,
			})
		})
	}
}

// --- /api/check/database ---

func (h *handler) Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		db := h.cfg.DatabaseConfig
		if !db.Configured() {
			c.JSON(http.StatusOK, gin.H{
				"status":    statusSkipped,
				"name":      "database",
				"latencyMs": 0,
				"detail":    Detail{"reason": ErrNotConfigured.Error()},
			})
			return
		}
		h.run(c, "database", 2500*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return probeDatabase(ctx, db)
		})
	}
}

// --- /api/check/metrics ---

func (h *handler) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "metrics", 800*time.Millisecond, Metrics)
	}
}

// probeDatabase prefers a full DSN and falls back to plain TCP reachability.
func probeDatabase(ctx context.Context, db *configuration.DatabaseConfig) (Detail, error) {
	if dsn, ok := db.PostgresDSN(); ok {
		return DatabaseByDSN(ctx, dsn)
	}
	if db.Addr != "" {
		return DatabaseByTCP(ctx, db.Addr)
	}
	return Detail{}, ErrNotConfigured
}
