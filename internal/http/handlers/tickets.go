package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	tickets, err := h.venueFor(r).ListTickets(ctx, r.URL.Query().Get("eventId"))
	if err != nil {
		writeUpstreamError(w, err, "tickets unavailable")
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	ticket, err := h.venueFor(r).GetTicket(ctx, id)
	if err != nil {
		writeUpstreamError(w, err, "ticket not found")
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	orders, err := h.venueFor(r).ListOrders(ctx)
	if err != nil {
		writeUpstreamError(w, err, "orders unavailable")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	order, err := h.venueFor(r).GetOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, err, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}
