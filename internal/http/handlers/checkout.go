package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"boleteria/internal/checkout"
	authmw "boleteria/internal/http/middleware"

	"github.com/go-chi/chi/v5"
)

type startCheckoutRequest struct {
	EventID string `json:"eventId" validate:"required"`
}

// StartCheckout opens a purchase session for an event. Buyers are usually
// anonymous; a logged-in operator testing the flow gets their id attached to
// the order.
func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	if !h.publicLimiter.Allow(r.RemoteAddr) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req startCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "eventId is required")
		return
	}

	var userID *string
	if claims, ok := authmw.ClaimsFromContext(r.Context()); ok {
		userID = &claims.UserID
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	view, err := h.checkout.Start(ctx, req.EventID, userID)
	if err != nil {
		h.loggerForRequest(r).Warn("checkout_start_failed", "event_id", req.EventID, "error", err)
		writeUpstreamError(w, err, "event not available")
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	view, err := h.checkout.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type buyerFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

func (h *Handler) SetCheckoutBuyerField(w http.ResponseWriter, r *http.Request) {
	var req buyerFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "field is required")
		return
	}
	view, err := h.checkout.SetBuyerField(chi.URLParam(r, "id"), req.Field, req.Value)
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) SetCheckoutQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	view, err := h.checkout.SetQuantity(chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type applyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

func (h *Handler) ApplyCheckoutCoupon(w http.ResponseWriter, r *http.Request) {
	if !h.couponLimiter.Allow(r.RemoteAddr) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	view, err := h.checkout.ApplyCoupon(ctx, chi.URLParam(r, "id"), req.Code)
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) RemoveCheckoutCoupon(w http.ResponseWriter, r *http.Request) {
	view, err := h.checkout.RemoveCoupon(chi.URLParam(r, "id"))
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SubmitCheckout runs the full remote sequence (tickets, order, preference),
// so it gets a wider timeout than the usual five seconds.
func (h *Handler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	if !h.publicLimiter.Allow(r.RemoteAddr) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	view, err := h.checkout.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) SubmitCheckoutPayment(w http.ResponseWriter, r *http.Request) {
	var req checkout.WidgetSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	view, err := h.checkout.SubmitPayment(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) CheckoutWidgetError(w http.ResponseWriter, r *http.Request) {
	view, err := h.checkout.WidgetError(chi.URLParam(r, "id"))
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) VerifyCheckoutPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	view, err := h.checkout.VerifyNow(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) CloseCheckout(w http.ResponseWriter, r *http.Request) {
	h.checkout.Close(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// CheckoutConfig exposes what the payment widget needs to initialize.
func (h *Handler) CheckoutConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"publicKey":   h.cfg.MercadoPago.PublicKey,
		"redirectUrl": h.cfg.MercadoPago.RedirectURL,
	})
}

func (h *Handler) writeCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "checkout session not found")
	case errors.Is(err, checkout.ErrWrongState):
		writeError(w, http.StatusConflict, "operation not valid in current state")
	case errors.Is(err, checkout.ErrSubmitInFlight):
		writeError(w, http.StatusConflict, "submit already in progress")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
