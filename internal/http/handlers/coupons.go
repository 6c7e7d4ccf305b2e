package handlers

import (
	"encoding/json"
	"net/http"

	"boleteria/internal/venueapi"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	coupons, err := h.venueFor(r).ListCoupons(ctx, r.URL.Query().Get("eventId"))
	if err != nil {
		writeUpstreamError(w, err, "coupons unavailable")
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *Handler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req venueapi.CouponUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Code == "" || req.EventID == "" {
		writeError(w, http.StatusBadRequest, "code and eventId are required")
		return
	}
	if req.IsPercentage && (req.Discount <= 0 || req.Discount > 100) {
		writeError(w, http.StatusBadRequest, "percentage discount must be between 0 and 100")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	coupon, err := h.venueFor(r).CreateCoupon(ctx, req)
	if err != nil {
		writeUpstreamError(w, err, "could not create coupon")
		return
	}
	h.loggerForRequest(r).Info("coupon_created", "code", coupon.Code, "event_id", req.EventID)
	writeJSON(w, http.StatusCreated, coupon)
}

func (h *Handler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req venueapi.CouponUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	coupon, err := h.venueFor(r).UpdateCoupon(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		writeUpstreamError(w, err, "could not update coupon")
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if err := h.venueFor(r).DeleteCoupon(ctx, chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, err, "could not delete coupon")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
