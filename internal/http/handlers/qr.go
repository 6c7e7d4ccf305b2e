package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateTicketQR asks the venue API for the ticket's signed QR payload.
func (h *Handler) GenerateTicketQR(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	qr, err := h.venueFor(r).GenerateTicketQR(ctx, id)
	if err != nil {
		writeUpstreamError(w, err, "could not generate qr")
		return
	}
	writeJSON(w, http.StatusOK, qr)
}

// TicketQRImage renders the ticket's QR payload as a printable PNG.
func (h *Handler) TicketQRImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	qr, err := h.venueFor(r).GenerateTicketQR(ctx, id)
	if err != nil {
		writeUpstreamError(w, err, "could not generate qr")
		return
	}

	png, err := qrcode.Encode(qr.QRCode, qrcode.Medium, 512)
	if err != nil {
		h.loggerForRequest(r).Error("qr_encode_failed", "ticket_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not render qr")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

type qrScanRequest struct {
	QRCode string `json:"qrCode" validate:"required"`
}

func (h *Handler) ValidateQR(w http.ResponseWriter, r *http.Request) {
	var req qrScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "qrCode is required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.venueFor(r).ValidateQR(ctx, req.QRCode)
	if err != nil {
		writeUpstreamError(w, err, "could not validate qr")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CheckInTicket marks a ticket as used at the door. Scanning twice is the
// common operator mistake; the venue API answers it with success=false and a
// message we relay untouched.
func (h *Handler) CheckInTicket(w http.ResponseWriter, r *http.Request) {
	var req qrScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "qrCode is required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.venueFor(r).CheckInTicket(ctx, req.QRCode)
	if err != nil {
		writeUpstreamError(w, err, "could not check in ticket")
		return
	}
	h.loggerForRequest(r).Info("ticket_checkin", "success", result.Success)
	writeJSON(w, http.StatusOK, result)
}
