package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	users, err := h.venueFor(r).ListUsersWithStats(ctx)
	if err != nil {
		writeUpstreamError(w, err, "users unavailable")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type toggleUserRequest struct {
	IsActive bool `json:"isActive"`
}

func (h *Handler) ToggleUserActive(w http.ResponseWriter, r *http.Request) {
	var req toggleUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	user, err := h.venueFor(r).ToggleUserActive(ctx, chi.URLParam(r, "id"), req.IsActive)
	if err != nil {
		writeUpstreamError(w, err, "could not update user")
		return
	}
	h.loggerForRequest(r).Info("user_toggled", "target_id", user.ID, "is_active", req.IsActive)
	writeJSON(w, http.StatusOK, user)
}
