package handlers

import (
	"encoding/json"
	"net/http"

	"boleteria/internal/venueapi"

	"github.com/go-chi/chi/v5"
)

var serviceOrderStatuses = map[string]bool{
	venueapi.ServiceOrderPending:       true,
	venueapi.ServiceOrderInPreparation: true,
	venueapi.ServiceOrderReady:         true,
	venueapi.ServiceOrderDelivered:     true,
	venueapi.ServiceOrderCancelled:     true,
}

var serviceOrderTypes = map[string]bool{
	venueapi.ServiceOrderFood:  true,
	venueapi.ServiceOrderDrink: true,
}

func (h *Handler) ListServiceOrders(w http.ResponseWriter, r *http.Request) {
	orderType := r.URL.Query().Get("type")
	status := r.URL.Query().Get("status")
	if orderType != "" && !serviceOrderTypes[orderType] {
		writeError(w, http.StatusBadRequest, "unknown order type")
		return
	}
	if status != "" && !serviceOrderStatuses[status] {
		writeError(w, http.StatusBadRequest, "unknown order status")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	orders, err := h.venueFor(r).ListServiceOrders(ctx, orderType, status)
	if err != nil {
		writeUpstreamError(w, err, "service orders unavailable")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) CreateServiceOrder(w http.ResponseWriter, r *http.Request) {
	var req venueapi.ServiceOrderCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.TableID == "" || req.Items == "" {
		writeError(w, http.StatusBadRequest, "tableId and items are required")
		return
	}
	if !serviceOrderTypes[req.Type] {
		writeError(w, http.StatusBadRequest, "unknown order type")
		return
	}
	if req.Total < 0 {
		writeError(w, http.StatusBadRequest, "total must not be negative")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	order, err := h.venueFor(r).CreateServiceOrder(ctx, req)
	if err != nil {
		writeUpstreamError(w, err, "could not create service order")
		return
	}
	h.loggerForRequest(r).Info("service_order_created", "order_id", order.ID, "table_id", req.TableID, "type", req.Type)
	writeJSON(w, http.StatusCreated, order)
}

type serviceOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) UpdateServiceOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req serviceOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !serviceOrderStatuses[req.Status] {
		writeError(w, http.StatusBadRequest, "unknown order status")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	order, err := h.venueFor(r).UpdateServiceOrderStatus(ctx, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeUpstreamError(w, err, "could not update service order")
		return
	}
	h.loggerForRequest(r).Info("service_order_status", "order_id", order.ID, "status", req.Status)
	writeJSON(w, http.StatusOK, order)
}

// ListKitchenOrders serves the kitchen display queue.
func (h *Handler) ListKitchenOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	orders, err := h.venueFor(r).ListKitchenOrders(ctx)
	if err != nil {
		writeUpstreamError(w, err, "kitchen orders unavailable")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	tables, err := h.venueFor(r).ListTables(ctx)
	if err != nil {
		writeUpstreamError(w, err, "tables unavailable")
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req venueapi.TableUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Number < 1 {
		writeError(w, http.StatusBadRequest, "table number must be positive")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	table, err := h.venueFor(r).CreateTable(ctx, req)
	if err != nil {
		writeUpstreamError(w, err, "could not create table")
		return
	}
	h.loggerForRequest(r).Info("table_created", "table_id", table.ID, "number", table.Number)
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	var req venueapi.TableUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Number < 1 {
		writeError(w, http.StatusBadRequest, "table number must be positive")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	table, err := h.venueFor(r).UpdateTable(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		writeUpstreamError(w, err, "could not update table")
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if err := h.venueFor(r).DeleteTable(ctx, chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, err, "could not delete table")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
