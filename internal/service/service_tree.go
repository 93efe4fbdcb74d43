package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/store"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/models"
)

type treeService struct {
	treeRepository store.TreeRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewTreeService(treeRepository store.TreeRepository, logger *logger.Logger) TreeService {
	return &treeService{
		treeRepository: treeRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// Create stores a new tree under a freshly allocated id.
//
// The duplicate check runs before allocation, so a rejected tree never
// consumes an id. Allocation is max(id)+1 and is not reserved; a concurrent
// create that wins the id makes this one fail with ErrTransient.
func (s *treeService) Create(ctx context.Context, tree models.Tree) (models.Tree, error) {
	log := logger.FromContext(ctx)

	tree.ID = 0
	tree.CreatedAt = nil
	tree.UpdatedAt = nil
	tree.ApplyDefaults()
	if err := utils.RecomputeAge(&tree, s.now()); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	existing, err := s.treeRepository.FindByNamesCI(ctx, tree.CommonName, tree.ScientificName)
	switch {
	case err == nil:
		log.Info().
			Str("func", "treeService.Create").
			Int64("existing_tree_id", existing.ID).
			Str("common_name", tree.CommonName).
			Msg("duplicate tree rejected")
		return models.Tree{}, ErrDuplicateTree
	case !errors.Is(err, store.ErrTreeNotFound):
		return models.Tree{}, fmt.Errorf("error checking tree names: %w", err)
	}

	id, err := s.treeRepository.AllocateID(ctx)
	if err != nil {
		return models.Tree{}, fmt.Errorf("error allocating tree id: %w", err)
	}
	tree.ID = id

	created, err := s.treeRepository.Insert(ctx, tree)
	if errors.Is(err, store.ErrIDAllocationRace) {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrTransient, err)
	}
	if err != nil {
		return models.Tree{}, fmt.Errorf("error saving tree: %w", err)
	}

	log.Info().
		Str("func", "treeService.Create").
		Int64("tree_id", created.ID).
		Str("common_name", created.CommonName).
		Msg("tree created")

	return created, nil
}

func (s *treeService) Get(ctx context.Context, id int64) (models.Tree, error) {
	tree, err := s.treeRepository.Get(ctx, id)
	if err != nil {
		return models.Tree{}, mapStoreError(err)
	}
	return tree, nil
}

func (s *treeService) FindByNames(ctx context.Context, commonName, scientificName string) (models.Tree, error) {
	tree, err := s.treeRepository.FindByNamesCI(ctx, commonName, scientificName)
	if err != nil {
		return models.Tree{}, mapStoreError(err)
	}
	return tree, nil
}

// Update applies a partial update. Names are not re-checked for duplicates;
// the reconnect sweep pushes whole records through here.
func (s *treeService) Update(ctx context.Context, id int64, update models.TreeUpdate) (models.Tree, error) {
	tree, err := s.treeRepository.Update(ctx, id, update)
	if err != nil {
		return models.Tree{}, mapStoreError(err)
	}
	return tree, nil
}

func (s *treeService) Delete(ctx context.Context, id int64) (models.Tree, error) {
	tree, err := s.treeRepository.Delete(ctx, id)
	if err != nil {
		return models.Tree{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "treeService.Delete").
		Int64("tree_id", id).
		Msg("tree deleted")

	return tree, nil
}

func (s *treeService) List(ctx context.Context) ([]models.Tree, error) {
	trees, err := s.treeRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing trees: %w", err)
	}
	return trees, nil
}

// mapStoreError turns a repository not-found into ErrTreeNotFound and keeps
// everything else wrapped as is.
func mapStoreError(err error) error {
	if errors.Is(err, store.ErrTreeNotFound) {
		return fmt.Errorf("%w: %w", ErrTreeNotFound, err)
	}
	return err
}
