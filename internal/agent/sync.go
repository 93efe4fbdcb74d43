package agent

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-tree-keeper/internal/app"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/models"
)

// sweep runs a reconciliation pass on demand. Per-tree failures are part of
// the report, not an error response.
func (h *Handler) sweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.coordinator.Sweep(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.sweep", err)
		return
	}

	utils.WriteSuccess(w, report, http.StatusOK)
}

func (h *Handler) getConnectivity(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, models.ConnectivityState{Online: h.connectivity.Online()}, http.StatusOK)
}

func (h *Handler) setConnectivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var state models.ConnectivityState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		log.Err(err).Str("func", "*Handler.setConnectivity").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if h.connectivity.Set(state.Online) {
		log.Info().Str("func", "*Handler.setConnectivity").Bool("online", state.Online).Msg("connectivity changed by host")
	}

	utils.WriteSuccess(w, models.ConnectivityState{Online: h.connectivity.Online()}, http.StatusOK)
}
