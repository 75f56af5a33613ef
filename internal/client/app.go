package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-tracker/internal/adapter"
	"github.com/MKhiriev/fleet-tracker/internal/config"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/service"
	"github.com/MKhiriev/fleet-tracker/internal/store"
	"github.com/MKhiriev/fleet-tracker/internal/tui"
	"github.com/MKhiriev/fleet-tracker/internal/workers"
)

type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	services *service.ClientServices
	tui      *tui.TUI
}

func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("get client config: %w", err)
	}

	log := logger.NewClientLogger("fleet-client")

	storages, err := store.NewClientStorages(cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter)
	svcs := service.NewClientServices(storages, serverAdapter, log)

	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{cfg: cfg, logger: log, services: svcs, tui: ui}, nil
}

// Run drives the client lifecycle: authenticate, warm the local cache,
// start the background refresh worker, then hand control to the report
// browser. A logout from the browser restarts the whole flow.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("user authenticated")

	if err = a.services.ReportService.Refresh(ctx); err != nil {
		a.logger.Err(err).Msg("initial report refresh ended with error")
	}

	workers.NewWorkers(ctx, a.cfg.Workers, a.services, a.logger).Run()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		cancel()
		return a.Run()
	}

	return nil
}
