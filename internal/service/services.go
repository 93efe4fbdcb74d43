package service

import (
	"fmt"

	"github.com/MKhiriev/go-tree-keeper/internal/config"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/store"
)

type Services struct {
	TreeService    TreeService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	treeService := NewTreeValidationService().Wrap(NewTreeService(storages.TreeRepository, logger))

	return &Services{
		TreeService:    treeService,
		AppInfoService: appInfo,
	}, nil
}
