package handlers

import (
	"encoding/json"
	"net/http"

	"boleteria/internal/auth"
	authmw "boleteria/internal/http/middleware"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"rol"`
	Label    string `json:"roleLabel"`
}

// Login authenticates against the venue API and wraps the result in a
// console session token. The upstream token never reaches the browser on its
// own; it travels inside our signed claims.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.publicLimiter.Allow(r.RemoteAddr) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	logger := h.loggerForRequest(r)
	resp, err := h.venue.Login(ctx, req.Username, req.Password)
	if err != nil {
		logger.Warn("login_failed", "username", req.Username, "error", err)
		writeUpstreamError(w, err, "invalid credentials")
		return
	}

	role, err := auth.ParseRole(resp.User.Role)
	if err != nil {
		logger.Error("login_unknown_role", "username", req.Username, "role", resp.User.Role)
		writeError(w, http.StatusForbidden, "unknown role")
		return
	}

	token, err := auth.SignSessionToken(h.cfg.JWTSecret, resp.User.ID, resp.User.Username, role, resp.Token)
	if err != nil {
		logger.Error("login_sign_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Info("login_ok", "username", resp.User.Username, "role", string(role))
	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User: loginUser{
			ID:       resp.User.ID,
			Username: resp.User.Username,
			Role:     string(role),
			Label:    role.Label(),
		},
	})
}

// Logout invalidates the upstream venue session. The console token itself
// just expires; the client drops it.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	if err := h.venueFor(r).Logout(ctx); err != nil {
		h.loggerForRequest(r).Warn("logout_upstream_failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the operator behind the session token plus the full permission
// set, so the UI renders exactly what the role allows.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := authmw.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return
	}

	perms := map[string]bool{}
	for _, p := range []auth.Permission{
		auth.PermDashboard, auth.PermEvents, auth.PermAddEvent,
		auth.PermCategories, auth.PermArtists, auth.PermCoupons,
		auth.PermQRScanner, auth.PermReports, auth.PermUsers,
		auth.PermTickets, auth.PermSettings, auth.PermService,
		auth.PermKitchen,
	} {
		perms[string(p)] = claims.Role.HasPermission(p)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": loginUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     string(claims.Role),
			Label:    claims.Role.Label(),
		},
		"permissions": perms,
	})
}
