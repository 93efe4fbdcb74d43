package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCommonName     = errors.New("common name is required")
	ErrEmptyScientificName = errors.New("scientific name is required")
	ErrNegativeAge         = errors.New("age must not be negative")
	ErrInvalidPlantedDate  = errors.New("planted date must be in YYYY-MM-DD format")
	ErrInvalidTreeID       = errors.New("invalid tree ID")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrEmptyQRCode         = errors.New("qr code must not be empty")
)
