package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tree-keeper/internal/validators"
	"github.com/MKhiriev/go-tree-keeper/models"
)

// TreeValidationService validates caller input before handing it to the
// wrapped TreeService.
type TreeValidationService struct {
	inner     TreeService
	validator validators.Validator
}

func NewTreeValidationService() TreeServiceWrapper {
	return &TreeValidationService{
		validator: validators.NewTreeValidator(),
	}
}

func (v *TreeValidationService) Create(ctx context.Context, tree models.Tree) (models.Tree, error) {
	if err := v.validator.Validate(ctx, tree); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	return v.inner.Create(ctx, tree)
}

func (v *TreeValidationService) Get(ctx context.Context, id int64) (models.Tree, error) {
	if err := v.validator.Validate(ctx, models.Tree{ID: id}, validators.FieldTreeID); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	return v.inner.Get(ctx, id)
}

func (v *TreeValidationService) FindByNames(ctx context.Context, commonName, scientificName string) (models.Tree, error) {
	probe := models.Tree{CommonName: commonName, ScientificName: scientificName}
	if err := v.validator.Validate(ctx, probe, validators.FieldCommonName, validators.FieldScientificName); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	return v.inner.FindByNames(ctx, commonName, scientificName)
}

func (v *TreeValidationService) Update(ctx context.Context, id int64, update models.TreeUpdate) (models.Tree, error) {
	if err := v.validator.Validate(ctx, models.Tree{ID: id}, validators.FieldTreeID); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	return v.inner.Update(ctx, id, update)
}

func (v *TreeValidationService) Delete(ctx context.Context, id int64) (models.Tree, error) {
	if err := v.validator.Validate(ctx, models.Tree{ID: id}, validators.FieldTreeID); err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	return v.inner.Delete(ctx, id)
}

func (v *TreeValidationService) List(ctx context.Context) ([]models.Tree, error) {
	return v.inner.List(ctx)
}

func (v *TreeValidationService) Wrap(wrapper TreeService) TreeService {
	v.inner = wrapper
	return v
}
