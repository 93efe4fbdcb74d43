package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tree-keeper/internal/app"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/utils"
	"github.com/MKhiriev/go-tree-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTree(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var tree models.Tree
	if err := json.NewDecoder(r.Body).Decode(&tree); err != nil {
		log.Err(err).Str("func", "*Handler.createTree").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.TreeService.Create(r.Context(), tree)
	if err != nil {
		writeServiceError(w, r, "*Handler.createTree", err)
		return
	}

	log.Info().Str("func", "*Handler.createTree").Int64("tree_id", created.ID).Msg("tree created")
	utils.WriteSuccess(w, created, http.StatusCreated)
}

func (h *Handler) getTree(w http.ResponseWriter, r *http.Request) {
	id, err := treeIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.getTree", err)
		return
	}

	tree, err := h.services.TreeService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.getTree", err)
		return
	}

	utils.WriteSuccess(w, tree, http.StatusOK)
}

func (h *Handler) lookupTree(w http.ResponseWriter, r *http.Request) {
	commonName := r.URL.Query().Get("common_name")
	scientificName := r.URL.Query().Get("scientific_name")
	if commonName == "" || scientificName == "" {
		utils.WriteError(w, app.MsgNamesRequired, http.StatusBadRequest)
		return
	}

	tree, err := h.services.TreeService.FindByNames(r.Context(), commonName, scientificName)
	if err != nil {
		writeServiceError(w, r, "*Handler.lookupTree", err)
		return
	}

	utils.WriteSuccess(w, tree, http.StatusOK)
}

func (h *Handler) updateTree(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := treeIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateTree", err)
		return
	}

	var update models.TreeUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateTree").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.TreeService.Update(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateTree", err)
		return
	}

	utils.WriteSuccess(w, updated, http.StatusOK)
}

func (h *Handler) deleteTree(w http.ResponseWriter, r *http.Request) {
	id, err := treeIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteTree", err)
		return
	}

	deleted, err := h.services.TreeService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteTree", err)
		return
	}

	utils.WriteSuccess(w, deleted, http.StatusOK)
}

func (h *Handler) listTrees(w http.ResponseWriter, r *http.Request) {
	trees, err := h.services.TreeService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listTrees", err)
		return
	}

	if trees == nil {
		trees = []models.Tree{}
	}
	utils.WriteSuccess(w, trees, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func treeIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTreeID, raw)
	}
	return id, nil
}
