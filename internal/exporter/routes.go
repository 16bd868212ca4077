package exporter

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestTimeout = 5 * time.Second

func (e *Exporter) registerRoutes() {
	e.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(e.appeared).String(),
			"service": e.cfg.Service,
			"version": "0.1.0",
		})
	})

	e.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"uptime":  time.Since(e.appeared).String(),
			"service": e.cfg.Service,
			"version": "0.1.0",
		})
	})

	e.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := e.router.Group("/v1")
	v1.GET("/monitors", e.entityRoute(func(ctx context.Context) (any, error) {
		return e.client.Monitors(ctx)
	}))
	v1.GET("/workspaces", e.entityRoute(func(ctx context.Context) (any, error) {
		return e.client.Workspaces(ctx)
	}))
	v1.GET("/clients", e.entityRoute(func(ctx context.Context) (any, error) {
		return e.client.Clients(ctx)
	}))
	v1.GET("/activewindow", e.entityRoute(func(ctx context.Context) (any, error) {
		return e.client.ActiveWindow(ctx)
	}))
	v1.GET("/layers", e.entityRoute(func(ctx context.Context) (any, error) {
		return e.client.Layers(ctx)
	}))
	v1.GET("/devices", e.entityRoute(func(ctx context.Context) (any, error) {
		return e.client.Devices(ctx)
	}))
	v1.GET("/version", e.entityRoute(func(ctx context.Context) (any, error) {
		return e.client.Version(ctx)
	}))
}

// entityRoute decodes fresh compositor state per request. Decode and
// transport failures both surface as 502: the exporter is a proxy for
// the socket, not an authority on its contents.
func (e *Exporter) entityRoute(fetch func(ctx context.Context) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		out, err := fetch(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
