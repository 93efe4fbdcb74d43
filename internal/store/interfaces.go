package store

import (
	"context"

	"github.com/MKhiriev/go-tree-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TreeRepository is the authoritative tree store. It is the only place tree
// ids are allocated.
type TreeRepository interface {
	// FindByNamesCI returns a tree whose common name or scientific name
	// equals the given one ignoring case, or ErrTreeNotFound.
	FindByNamesCI(ctx context.Context, commonName, scientificName string) (models.Tree, error)
	// AllocateID returns max(tree_id)+1, or 1 for an empty store.
	AllocateID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, tree models.Tree) (models.Tree, error)
	Get(ctx context.Context, id int64) (models.Tree, error)
	Update(ctx context.Context, id int64, update models.TreeUpdate) (models.Tree, error)
	Delete(ctx context.Context, id int64) (models.Tree, error)
	// ListAll returns every tree ordered by id descending.
	ListAll(ctx context.Context) ([]models.Tree, error)
}

// LocalTreeRepository is the per-device tree cache. It never allocates ids
// and never rejects duplicates.
type LocalTreeRepository interface {
	Get(ctx context.Context, id int64) (models.Tree, error)
	// Put inserts or replaces the record stored under tree.ID.
	Put(ctx context.Context, tree models.Tree) error
	List(ctx context.Context) ([]models.Tree, error)
	Update(ctx context.Context, id int64, update models.TreeUpdate) error
	Delete(ctx context.Context, id int64) error
}
