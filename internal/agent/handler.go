package agent

import (
	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
)

// ConnectivitySwitch is a connectivity monitor whose state the host sets
// explicitly. [connectivity.Switch] implements it.
type ConnectivitySwitch interface {
	connectivity.Monitor
	Set(online bool) bool
}

type Handler struct {
	coordinator  service.SyncCoordinator
	connectivity ConnectivitySwitch

	// baseURL prefixes the tree page address returned after a create.
	baseURL string

	logger *logger.Logger
}

func NewHandler(coordinator service.SyncCoordinator, connectivity ConnectivitySwitch, baseURL string, logger *logger.Logger) *Handler {
	logger.Info().Msg("agent handler created")
	return &Handler{
		coordinator:  coordinator,
		connectivity: connectivity,
		baseURL:      baseURL,
		logger:       logger,
	}
}
