package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-entry-keeper/internal/app"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/pagination"
	"github.com/MKhiriev/go-entry-keeper/internal/utils"
	"github.com/MKhiriev/go-entry-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	query := r.URL.Query()

	after, err := pagination.DecodeCursor(query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("bad cursor")
		h.writeServiceError(w, r, err)
		return
	}

	var limit int
	if raw := query.Get(paramLimit); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
	}

	page, err := h.entries.ListEntries(r.Context(), models.EntriesRequest{
		UserID: userID,
		After:  after,
		Limit:  limit,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if page.Entries == nil {
		page.Entries = []models.Entry{}
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.entries.CreateEntry(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.entries.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.entries.UpdateEntry(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.entries.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EmptyResponse{}, http.StatusOK)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Str("uri", r.RequestURI).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}
