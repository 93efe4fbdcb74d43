package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/agent"
	"github.com/MKhiriev/go-tree-keeper/internal/config"
	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
	"github.com/MKhiriev/go-tree-keeper/internal/workers"
)

const shutdownTimeout = 10 * time.Second

// UI is a foreground front end sharing the process with the agent API.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	sw       *connectivity.Switch

	server *http.Server
	logger *logger.Logger
}

// NewApp assembles the agent around sw, the monitor the client services
// were built with. The prober feeds sw from the remote health endpoint; the
// host can override it through the agent connectivity endpoint. ui may be
// nil for a headless agent.
func NewApp(services *service.ClientServices, sw *connectivity.Switch, pinger connectivity.Pinger, ui UI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || sw == nil || pinger == nil {
		return nil, errors.New("client services, connectivity switch and pinger are required")
	}

	prober := connectivity.NewProber(pinger, sw, cfg.Workers.ProbeInterval, cfg.Workers.ProbeTimeout, logger)

	handler := agent.NewHandler(services.SyncCoordinator, sw, cfg.App.BaseURL, logger)

	return &App{
		services: services,
		ui:       ui,
		// the sweep job must be subscribed before the prober publishes
		workers: workers.NewWorkers(services.ReconnectJob, prober),
		sw:      sw,
		server: &http.Server{
			Addr:              cfg.Agent.HTTPAddress,
			Handler:           handler.Init(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen agent address: %w", err)
	}

	if a.ui == nil {
		return a.serve(ctx, listener)
	}

	// quitting the UI stops the whole agent
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() { serveErr <- a.serve(ctx, listener) }()

	uiErr := a.ui.Run(ctx)
	cancel()

	return errors.Join(uiErr, <-serveErr)
}

func (a *App) serve(ctx context.Context, listener net.Listener) error {
	a.workers.Start(ctx)
	defer a.stop()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info().Str("address", listener.Addr().String()).Msg("agent API listening")
		serveErr <- a.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Err(err).Str("func", "*App.serve").Msg("agent API shutdown")
		}
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("agent API stopped: %w", err)
	}
}

// stop halts workers first so no sweep starts against a closing
// coordinator, then waits for background checks.
func (a *App) stop() {
	a.workers.Stop()
	a.sw.Close()
	a.services.SyncCoordinator.Close()
	a.logger.Info().Msg("client stopped gracefully")
}
