package handlers

import (
	"net/http"
)

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	stats, err := h.venueFor(r).GetDashboardStats(ctx)
	if err != nil {
		writeUpstreamError(w, err, "stats unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ReportsData relays the reports payload as-is. The venue API owns the
// shape; the console does not reinterpret it.
func (h *Handler) ReportsData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	data, err := h.venueFor(r).GetReportsData(ctx, r.URL.Query().Get("period"))
	if err != nil {
		writeUpstreamError(w, err, "reports unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) TopEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	events, err := h.venueFor(r).GetTopEvents(ctx, r.URL.Query().Get("period"))
	if err != nil {
		writeUpstreamError(w, err, "top events unavailable")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) SalesChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	points, err := h.venueFor(r).GetSalesChart(ctx, r.URL.Query().Get("period"))
	if err != nil {
		writeUpstreamError(w, err, "sales chart unavailable")
		return
	}
	writeJSON(w, http.StatusOK, points)
}
