package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"boleteria/internal/venueapi"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUpstreamError relays a venue-API failure. Client-level upstream
// statuses pass through with their message; anything else becomes a 502 so
// our own 5xx space stays meaningful.
func writeUpstreamError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *venueapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		msg := apiErr.Message
		if msg == "" {
			msg = fallback
		}
		writeError(w, apiErr.StatusCode, msg)
		return
	}
	writeError(w, http.StatusBadGateway, fallback)
}
