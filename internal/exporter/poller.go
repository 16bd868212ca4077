package exporter

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/hyprctl/internal/observability"
)

// Poll runs one snapshot refresh of the compositor gauges.
func (e *Exporter) Poll(ctx context.Context) error {
	start := time.Now()

	monitors, err := e.client.Monitors(ctx)
	if err != nil {
		observability.RecordPollError()
		return err
	}
	workspaces, err := e.client.Workspaces(ctx)
	if err != nil {
		observability.RecordPollError()
		return err
	}
	clients, err := e.client.Clients(ctx)
	if err != nil {
		observability.RecordPollError()
		return err
	}

	windows := make(map[string]int, len(workspaces))
	for _, ws := range workspaces {
		windows[ws.ID.String()] = int(ws.Windows)
	}
	observability.RecordSnapshot(len(monitors), len(workspaces), len(clients), windows, time.Since(start))
	return nil
}

// StartPolling refreshes gauges on the configured interval until the
// context is canceled. Poll failures are logged and counted, never fatal.
func (e *Exporter) StartPolling(ctx context.Context) {
	interval := time.Duration(e.cfg.PollIntervalMS) * time.Millisecond
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			pollCtx, cancel := context.WithTimeout(ctx, interval)
			if err := e.Poll(pollCtx); err != nil {
				log.Warn().Err(err).Msg("poll_failed")
			}
			cancel()
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
