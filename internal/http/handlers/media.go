package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type presignRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
}

var allowedArtworkTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

const maxArtworkBytes = 5 * 1024 * 1024

// PresignMedia hands the browser a direct-to-bucket upload URL for event
// artwork.
func (h *Handler) PresignMedia(w http.ResponseWriter, r *http.Request) {
	var req presignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.FileName == "" || req.ContentType == "" || req.SizeBytes == 0 {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	if req.SizeBytes > maxArtworkBytes {
		writeError(w, http.StatusBadRequest, "file too large")
		return
	}
	if _, ok := allowedArtworkTypes[strings.ToLower(req.ContentType)]; !ok {
		writeError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	if h.s3 == nil {
		writeError(w, http.StatusInternalServerError, "media not configured")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	uploadURL, fileURL, err := h.s3.PresignPutObject(ctx, req.FileName, req.ContentType)
	if err != nil {
		h.loggerForRequest(r).Error("presign_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "presign failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"uploadUrl": uploadURL,
		"fileUrl":   fileURL,
	})
}

// UploadMedia accepts the artwork through the console for clients that
// cannot do the presigned PUT themselves.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if h.s3 == nil {
		writeError(w, http.StatusInternalServerError, "media not configured")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if _, ok := allowedArtworkTypes[strings.ToLower(contentType)]; !ok {
		writeError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	fileName := r.URL.Query().Get("fileName")
	if fileName == "" {
		writeError(w, http.StatusBadRequest, "fileName is required")
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxArtworkBytes)
	defer body.Close()

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	fileURL, err := h.s3.UploadObject(ctx, fileName, contentType, body, r.ContentLength)
	if err != nil {
		h.loggerForRequest(r).Error("upload_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"fileUrl": fileURL})
}
