package agent

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tree-keeper/internal/app"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidTreeID:              {http.StatusBadRequest, app.MsgInvalidTreeID},
	service.ErrOfflineUnavailable: {http.StatusServiceUnavailable, app.MsgOfflineUnavailable},
	service.ErrDuplicateTree:      {http.StatusConflict, app.MsgDuplicateTree},
	service.ErrTreeNotFound:       {http.StatusNotFound, app.MsgTreeNotFound},
	service.ErrTransient:          {http.StatusBadGateway, app.MsgRemoteUnavailable},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}

	// validation messages are meant for the form
	if errors.Is(err, service.ErrInvalidTree) || errors.Is(err, ErrEmptyArtifact) {
		return errorResponse{http.StatusBadRequest, err.Error()}
	}

	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", resp.status).Msg("agent request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", resp.status).Msg("agent request rejected")
	}

	utils.WriteError(w, resp.message, resp.status)
}
