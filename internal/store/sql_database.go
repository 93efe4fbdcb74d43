package store

import (
	"database/sql"

	"github.com/MKhiriev/go-tree-keeper/internal/logger"
)

// DB wraps a database handle together with the error classifier of its
// driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
