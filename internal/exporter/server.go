package exporter

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/hyprctl/internal/client"
	"github.com/danmuck/hyprctl/internal/observability"
)

type Exporter struct {
	cfg      Config
	client   *client.Client
	router   *gin.Engine
	appeared time.Time
}

// New wires the gin engine with the standard middleware stack and
// registers all routes.
func New(cfg Config, cl *client.Client) *Exporter {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Service))
	if len(cfg.CorsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	e := &Exporter{
		cfg:      cfg,
		client:   cl,
		router:   r,
		appeared: time.Now(),
	}
	e.registerRoutes()
	return e
}

func (e *Exporter) Router() *gin.Engine {
	return e.router
}

// Run serves until the listener fails.
func (e *Exporter) Run() error {
	log.Info().Str("addr", e.cfg.Addr).Str("service", e.cfg.Service).Msg("exporter_listen")
	return e.router.Run(e.cfg.Addr)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
