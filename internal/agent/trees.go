package agent

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tree-keeper/internal/app"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/models"
	"github.com/go-chi/chi/v5"
)

type attachRequest struct {
	QRCode string `json:"qr_code"`
}

func (h *Handler) createTree(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var tree models.Tree
	if err := json.NewDecoder(r.Body).Decode(&tree); err != nil {
		log.Err(err).Str("func", "*Handler.createTree").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.coordinator.Create(r.Context(), tree)
	if err != nil {
		writeError(w, r, "*Handler.createTree", err)
		return
	}

	utils.WriteSuccess(w, models.CreatedTree{
		Tree: created,
		URL:  models.TreeURL(h.baseURL, created.ID),
	}, http.StatusCreated)
}

func (h *Handler) getTree(w http.ResponseWriter, r *http.Request) {
	id, err := treeIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.getTree", err)
		return
	}

	tree, err := h.coordinator.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getTree", err)
		return
	}

	utils.WriteSuccess(w, tree, http.StatusOK)
}

// updateTree answers with an empty envelope: the record may have been moved
// to another id by the coordinator, and the UI reloads the list anyway.
func (h *Handler) updateTree(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := treeIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.updateTree", err)
		return
	}

	var update models.TreeUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateTree").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.coordinator.Update(r.Context(), id, update); err != nil {
		writeError(w, r, "*Handler.updateTree", err)
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handler) attachQRCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := treeIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.attachQRCode", err)
		return
	}

	var req attachRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.attachQRCode").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.QRCode) == "" {
		writeError(w, r, "*Handler.attachQRCode", ErrEmptyArtifact)
		return
	}

	if err = h.coordinator.AttachArtifact(r.Context(), id, req.QRCode); err != nil {
		writeError(w, r, "*Handler.attachQRCode", err)
		return
	}

	utils.WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handler) listTrees(w http.ResponseWriter, r *http.Request) {
	trees, err := h.coordinator.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listTrees", err)
		return
	}

	if trees == nil {
		trees = []models.Tree{}
	}
	utils.WriteSuccess(w, trees, http.StatusOK)
}

func treeIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTreeID, raw)
	}
	return id, nil
}
