package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boleteria/internal/auth"
	"boleteria/internal/http/middleware"

	"github.com/go-chi/chi/v5"
)

func serviceRouter(t *testing.T, h *Handler) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware("test-secret"))

		r.Route("/admin/service-orders", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermService))
			r.Get("/", h.ListServiceOrders)
			r.Post("/", h.CreateServiceOrder)
			r.Put("/{id}/status", h.UpdateServiceOrderStatus)
		})

		r.Route("/admin/tables", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermService))
			r.Get("/", h.ListTables)
			r.Post("/", h.CreateTable)
		})

		r.Route("/admin/kitchen", func(r chi.Router) {
			r.Use(middleware.RequirePermission(auth.PermKitchen))
			r.Get("/orders", h.ListKitchenOrders)
			r.Put("/orders/{id}/status", h.UpdateServiceOrderStatus)
		})
	})
	return r
}

func signedToken(t *testing.T, role auth.Role) string {
	t.Helper()
	token, err := auth.SignSessionToken("test-secret", "u-1", "mesero1", role, "venue-tok")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

// TestServiceOrderRoutes verifies the waiter surface: proxying, validation
// and the permission gate that keeps kitchen staff out.
func TestServiceOrderRoutes(t *testing.T) {
	t.Parallel()

	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /service-orders", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer venue-tok" {
			t.Fatalf("upstream auth = %q, want operator venue token", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "so-1", "tableId": "tb-1", "type": "DRINK", "items": "2x Fernet", "total": 9000.0, "status": "PENDING"},
		})
	})
	upstream.HandleFunc("POST /service-orders", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			TableID string `json:"tableId"`
			Type    string `json:"type"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "so-2", "tableId": body.TableID, "type": body.Type, "status": "PENDING",
		})
	})
	upstream.HandleFunc("PUT /service-orders/so-1/status", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status string `json:"status"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "so-1", "status": body.Status})
	})

	h := newTestHandler(t, upstream)
	router := serviceRouter(t, h)
	token := signedToken(t, auth.RoleService)

	do := func(method, target, body, tok string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodGet, "/admin/service-orders/?type=DRINK", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "so-1") {
		t.Fatalf("list body = %s", rec.Body.String())
	}

	rec = do(http.MethodGet, "/admin/service-orders/?type=BEER", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad type filter: status = %d, want 400", rec.Code)
	}

	rec = do(http.MethodPost, "/admin/service-orders/",
		`{"tableId":"tb-1","type":"FOOD","items":"1x Pizza","total":12000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(http.MethodPost, "/admin/service-orders/", `{"type":"FOOD","items":"1x Pizza"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create without table: status = %d, want 400", rec.Code)
	}

	rec = do(http.MethodPut, "/admin/service-orders/so-1/status", `{"status":"READY"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status update: status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(http.MethodPut, "/admin/service-orders/so-1/status", `{"status":"BURNED"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: status = %d, want 400", rec.Code)
	}

	// KITCHEN holds the kitchen permission but not service.
	rec = do(http.MethodGet, "/admin/service-orders/", "", signedToken(t, auth.RoleKitchen))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("kitchen on service orders: status = %d, want 403", rec.Code)
	}
}

// TestKitchenRoutes verifies the kitchen queue gate in both directions.
func TestKitchenRoutes(t *testing.T) {
	t.Parallel()

	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /service-orders/kitchen", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "so-3", "type": "FOOD", "items": "3x Empanadas", "status": "IN_PREPARATION"},
		})
	})

	h := newTestHandler(t, upstream)
	router := serviceRouter(t, h)

	req := httptest.NewRequest(http.MethodGet, "/admin/kitchen/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, auth.RoleKitchen))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("kitchen list: status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "IN_PREPARATION") {
		t.Fatalf("kitchen body = %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/kitchen/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, auth.RoleService))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("service on kitchen queue: status = %d, want 403", rec.Code)
	}
}

// TestTableRoutes verifies the floor-plan proxy.
func TestTableRoutes(t *testing.T) {
	t.Parallel()

	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /tables", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "tb-1", "number": 4, "positionX": 12.5, "positionY": 30.0, "isActive": true},
		})
	})
	upstream.HandleFunc("POST /tables", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "tb-2", "number": 9, "isActive": true})
	})

	h := newTestHandler(t, upstream)
	router := serviceRouter(t, h)
	token := signedToken(t, auth.RoleService)

	req := httptest.NewRequest(http.MethodGet, "/admin/tables/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "tb-1") {
		t.Fatalf("list tables: status = %d, body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/tables/", strings.NewReader(`{"number":9,"positionX":1,"positionY":2}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create table: status = %d, body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/tables/", strings.NewReader(`{"number":0}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("table number zero: status = %d, want 400", rec.Code)
	}
}
