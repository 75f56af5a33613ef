// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
)

// Refresher re-fetches reports from the server into the local cache.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// reportRefreshWorker periodically refreshes the local report cache so the
// TUI shows reasonably fresh data even between manual reloads. Refresh
// failures are logged and the ticker keeps going: a flaky connection must
// not kill the worker.
type reportRefreshWorker struct {
	ctx       context.Context
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger
}

func newReportRefreshWorker(ctx context.Context, refresher Refresher, interval time.Duration, logger *logger.Logger) *reportRefreshWorker {
	return &reportRefreshWorker{
		ctx:       ctx,
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

func (w *reportRefreshWorker) Run() {
	go w.loop()
}

func (w *reportRefreshWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Msg("report refresh worker stopped")
			return
		case <-ticker.C:
			if err := w.refresher.Refresh(w.ctx); err != nil {
				w.logger.Err(err).Msg("background report refresh ended with error")
			}
		}
	}
}
