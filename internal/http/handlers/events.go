package handlers

import (
	"encoding/json"
	"net/http"

	"boleteria/internal/venueapi"

	"github.com/go-chi/chi/v5"
)

// ListEvents is the public storefront listing.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	events, err := h.venueFor(r).ListEvents(ctx)
	if err != nil {
		h.loggerForRequest(r).Warn("list_events_failed", "error", err)
		writeUpstreamError(w, err, "events unavailable")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	event, err := h.venueFor(r).GetEvent(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req venueapi.EventUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "title and date are required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	event, err := h.venueFor(r).CreateEvent(ctx, req)
	if err != nil {
		h.loggerForRequest(r).Warn("create_event_failed", "error", err)
		writeUpstreamError(w, err, "could not create event")
		return
	}
	h.loggerForRequest(r).Info("event_created", "event_id", event.ID, "title", event.Title)
	writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req venueapi.EventUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	event, err := h.venueFor(r).UpdateEvent(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		writeUpstreamError(w, err, "could not update event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if err := h.venueFor(r).DeleteEvent(ctx, chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, err, "could not delete event")
		return
	}
	h.loggerForRequest(r).Info("event_deleted", "event_id", chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
