package handlers

import (
	"encoding/json"
	"net/http"

	"boleteria/internal/venueapi"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	categories, err := h.venueFor(r).ListCategories(ctx)
	if err != nil {
		writeUpstreamError(w, err, "categories unavailable")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req venueapi.CategoryUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	category, err := h.venueFor(r).CreateCategory(ctx, req)
	if err != nil {
		writeUpstreamError(w, err, "could not create category")
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req venueapi.CategoryUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	category, err := h.venueFor(r).UpdateCategory(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		writeUpstreamError(w, err, "could not update category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if err := h.venueFor(r).DeleteCategory(ctx, chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, err, "could not delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	artists, err := h.venueFor(r).ListArtists(ctx)
	if err != nil {
		writeUpstreamError(w, err, "artists unavailable")
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	artist, err := h.venueFor(r).GetArtist(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, err, "artist not found")
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req venueapi.ArtistUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	artist, err := h.venueFor(r).CreateArtist(ctx, req)
	if err != nil {
		writeUpstreamError(w, err, "could not create artist")
		return
	}
	writeJSON(w, http.StatusCreated, artist)
}

func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	var req venueapi.ArtistUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	artist, err := h.venueFor(r).UpdateArtist(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		writeUpstreamError(w, err, "could not update artist")
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if err := h.venueFor(r).DeleteArtist(ctx, chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, err, "could not delete artist")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
