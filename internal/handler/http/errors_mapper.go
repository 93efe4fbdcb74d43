package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tree-keeper/internal/app"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
	"github.com/MKhiriev/go-tree-keeper/internal/store"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidTreeID:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidTree:           http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrDuplicateTree:         http.StatusConflict,
	service.ErrTreeNotFound:          http.StatusNotFound,
	service.ErrTransient:             http.StatusServiceUnavailable,

	store.ErrTreeNotFound:     http.StatusNotFound,
	store.ErrIDAllocationRace: http.StatusServiceUnavailable,
	store.ErrTreeNotSaved:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// retryable driver failures also wrap a generic SQL sentinel
	if errors.Is(err, store.ErrTemporary) {
		return http.StatusServiceUnavailable
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text placed into the envelope error field.
// Validation failures expose the validator message, server-side failures
// never leak internals.
func messageFromError(err error, status int) string {
	switch {
	case errors.Is(err, ErrInvalidTreeID):
		return app.MsgInvalidTreeID
	case errors.Is(err, service.ErrDuplicateTree):
		return app.MsgDuplicateTree
	case status == http.StatusNotFound:
		return app.MsgTreeNotFound
	case status == http.StatusBadRequest:
		return err.Error()
	case status == http.StatusServiceUnavailable:
		return http.StatusText(status)
	}
	return app.MsgInternalServerError
}

func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
