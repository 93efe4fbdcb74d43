package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-tree-keeper/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldTreeID targets the remote-assigned identifier.
	FieldTreeID = "tree_id"

	// FieldCommonName targets the everyday name of a tree.
	FieldCommonName = "common_name"

	// FieldScientificName targets the botanical name of a tree.
	FieldScientificName = "scientific_name"

	FieldAge         = "age"
	FieldPlantedDate = "planted_date"
	FieldQRCode      = "qr_code"

	// FieldUpdateNotEmpty requires a TreeUpdate to carry at least one field.
	FieldUpdateNotEmpty = "update_not_empty"
)

// TreeValidator implements Validator for models.Tree and models.TreeUpdate.
type TreeValidator struct {
}

// NewTreeValidator constructs a TreeValidator and returns it as a Validator.
func NewTreeValidator() Validator {
	return &TreeValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.Tree and models.TreeUpdate are accepted; anything else yields
// ErrUnsupportedType.
func (v *TreeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Tree:
		return v.validateTree(ctx, value, fields...)
	case *models.Tree:
		return v.validateTree(ctx, *value, fields...)

	case models.TreeUpdate:
		return v.validateTreeUpdate(ctx, value, fields...)
	case *models.TreeUpdate:
		return v.validateTreeUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTree checks a full record.
//
// Default validated fields: CommonName, ScientificName, Age, PlantedDate.
// FieldTreeID is opt-in since new records carry no id yet.
func (v *TreeValidator) validateTree(ctx context.Context, tree models.Tree, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCommonName, FieldScientificName, FieldAge, FieldPlantedDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTreeID:
			if tree.ID <= 0 {
				return ErrInvalidTreeID
			}
		case FieldCommonName:
			if strings.TrimSpace(tree.CommonName) == "" {
				return ErrEmptyCommonName
			}
		case FieldScientificName:
			if strings.TrimSpace(tree.ScientificName) == "" {
				return ErrEmptyScientificName
			}
		case FieldAge:
			if tree.Age < 0 {
				return ErrNegativeAge
			}
		case FieldPlantedDate:
			if !isValidPlantedDate(tree.PlantedDate) {
				return ErrInvalidPlantedDate
			}
		case FieldQRCode:
			if tree.QRCode != nil && *tree.QRCode == "" {
				return ErrEmptyQRCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTreeUpdate checks the fields a partial update carries. Nil fields
// are not inspected.
func (v *TreeValidator) validateTreeUpdate(ctx context.Context, update models.TreeUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateNotEmpty, FieldCommonName, FieldScientificName, FieldAge, FieldPlantedDate, FieldQRCode}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdateNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldCommonName:
			if update.CommonName != nil && strings.TrimSpace(*update.CommonName) == "" {
				return ErrEmptyCommonName
			}
		case FieldScientificName:
			if update.ScientificName != nil && strings.TrimSpace(*update.ScientificName) == "" {
				return ErrEmptyScientificName
			}
		case FieldAge:
			if update.Age != nil && *update.Age < 0 {
				return ErrNegativeAge
			}
		case FieldPlantedDate:
			if update.PlantedDate != nil && !isValidPlantedDate(*update.PlantedDate) {
				return ErrInvalidPlantedDate
			}
		case FieldQRCode:
			if update.QRCode != nil && *update.QRCode == "" {
				return ErrEmptyQRCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidPlantedDate accepts the empty string and YYYY-MM-DD dates.
func isValidPlantedDate(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse(models.PlantedDateLayout, value)
	return err == nil
}
