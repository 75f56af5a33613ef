package workers

import (
	"context"

	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/service"
)

// Workers is an aggregate that runs all registered workers.
type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client worker set from configuration. A zero
// refresh interval disables the refresh worker, leaving the set empty.
func NewWorkers(ctx context.Context, cfg config.ClientWorkers, services *service.ClientServices, logger *logger.Logger) *Workers {
	all := make([]Worker, 0, 1)

	if cfg.RefreshInterval > 0 {
		all = append(all, newReportRefreshWorker(ctx, services.ReportService, cfg.RefreshInterval, logger))
	}

	return &Workers{workers: all}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
