package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hyprctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hyprctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	compositorMonitors = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "hyprctl",
		Subsystem: "compositor",
		Name:      "monitors",
		Help:      "Monitors reported by the compositor.",
	})
	compositorWorkspaces = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "hyprctl",
		Subsystem: "compositor",
		Name:      "workspaces",
		Help:      "Workspaces reported by the compositor.",
	})
	compositorClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "hyprctl",
		Subsystem: "compositor",
		Name:      "clients",
		Help:      "Mapped windows reported by the compositor.",
	})
	workspaceWindows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "hyprctl",
			Subsystem: "compositor",
			Name:      "workspace_windows",
			Help:      "Windows per workspace.",
		},
		[]string{"workspace"},
	)

	pollDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hyprctl",
		Subsystem: "poll",
		Name:      "duration_seconds",
		Help:      "Control socket poll duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
	pollErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hyprctl",
		Subsystem: "poll",
		Name:      "errors_total",
		Help:      "Control socket polls that failed.",
	})
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration,
			compositorMonitors, compositorWorkspaces, compositorClients,
			workspaceWindows, pollDuration, pollErrors,
		)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordSnapshot refreshes the compositor state gauges from one poll.
// The per-workspace vector is reset first so vanished workspaces drop
// their series.
func RecordSnapshot(monitors, workspaces, clients int, windows map[string]int, duration time.Duration) {
	RegisterMetrics()
	compositorMonitors.Set(float64(monitors))
	compositorWorkspaces.Set(float64(workspaces))
	compositorClients.Set(float64(clients))
	workspaceWindows.Reset()
	for name, count := range windows {
		workspaceWindows.WithLabelValues(name).Set(float64(count))
	}
	pollDuration.Observe(duration.Seconds())
}

func RecordPollError() {
	RegisterMetrics()
	pollErrors.Inc()
}
