package service

import (
	"github.com/MKhiriev/go-tree-keeper/internal/adapter"
	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/store"
)

type ClientServices struct {
	SyncCoordinator SyncCoordinator
	ReconnectJob    ReconnectSweepJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, monitor connectivity.Monitor, logger *logger.Logger) *ClientServices {
	coordinator := NewSyncCoordinator(storages, serverAdapter, monitor, logger)

	return &ClientServices{
		SyncCoordinator: coordinator,
		ReconnectJob:    NewReconnectSweepJob(coordinator, monitor, logger),
	}
}
