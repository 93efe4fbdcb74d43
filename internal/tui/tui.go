package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
	"github.com/MKhiriev/go-tree-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the device agent. It talks to the sync
// coordinator in-process, the same way the loopback API does.
type TUI struct {
	coordinator service.SyncCoordinator
	monitor     connectivity.Monitor
	baseURL     string
	buildInfo   models.AppBuildInfo

	logger *logger.Logger
}

func New(coordinator service.SyncCoordinator, monitor connectivity.Monitor, baseURL string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		coordinator: coordinator,
		monitor:     monitor,
		baseURL:     baseURL,
		buildInfo:   buildInfo,
		logger:      logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.coordinator, t.monitor, t.baseURL, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal ui: %w", err)
	}

	t.logger.Info().Str("func", "*TUI.Run").Msg("terminal ui closed")
	return nil
}
