package service

import (
	"context"

	"github.com/MKhiriev/go-tree-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TreeServiceWrapper

// TreeService is the authoritative tree store behind the remote HTTP API.
// Create is the only path that allocates ids and it guards against
// duplicate names before allocating.
type TreeService interface {
	Create(ctx context.Context, tree models.Tree) (models.Tree, error)
	Get(ctx context.Context, id int64) (models.Tree, error)
	FindByNames(ctx context.Context, commonName, scientificName string) (models.Tree, error)
	Update(ctx context.Context, id int64, update models.TreeUpdate) (models.Tree, error)
	Delete(ctx context.Context, id int64) (models.Tree, error)
	List(ctx context.Context) ([]models.Tree, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TreeServiceWrapper defines middleware composition for TreeService.
// Implementations wrap an existing TreeService to add behavior such as
// logging or validating.
type TreeServiceWrapper interface {
	Wrap(TreeService) TreeService // returns a decorated TreeService applying additional behavior
}
