package venueapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestListServiceOrdersFilters verifies query-parameter plumbing.
func TestListServiceOrdersFilters(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/service-orders" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotQuery = map[string]string{
			"type":   r.URL.Query().Get("type"),
			"status": r.URL.Query().Get("status"),
		}
		_ = json.NewEncoder(w).Encode([]ServiceOrder{{ID: "so-1", Status: ServiceOrderPending}})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, srv.Client(), nil)

	orders, err := client.ListServiceOrders(context.Background(), ServiceOrderFood, ServiceOrderPending)
	if err != nil {
		t.Fatalf("list service orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "so-1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
	if gotQuery["type"] != "FOOD" || gotQuery["status"] != "PENDING" {
		t.Fatalf("query = %v", gotQuery)
	}

	if _, err := client.ListServiceOrders(context.Background(), "", ""); err != nil {
		t.Fatalf("list without filters: %v", err)
	}
	if gotQuery["type"] != "" || gotQuery["status"] != "" {
		t.Fatalf("empty filters leaked into query: %v", gotQuery)
	}
}

// TestUpdateServiceOrderStatus verifies the status endpoint shape.
func TestUpdateServiceOrderStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/service-orders/so-9/status" || r.Method != http.MethodPut {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ServiceOrder{ID: "so-9", Status: req.Status})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, srv.Client(), nil)
	order, err := client.UpdateServiceOrderStatus(context.Background(), "so-9", ServiceOrderReady)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if order.Status != ServiceOrderReady {
		t.Fatalf("status = %q, want %q", order.Status, ServiceOrderReady)
	}
}

// TestTableLifecycle verifies the table endpoints end to end against a fake.
func TestTableLifecycle(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /tables":
			_ = json.NewEncoder(w).Encode([]Table{{ID: "tb-1", Number: 4, IsActive: true}})
		case "POST /tables":
			var req TableUpsert
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(Table{ID: "tb-2", Number: req.Number, PositionX: req.PositionX, PositionY: req.PositionY, IsActive: true})
		case "PUT /tables/tb-2":
			var req TableUpsert
			_ = json.NewDecoder(r.Body).Decode(&req)
			isActive := true
			if req.IsActive != nil {
				isActive = *req.IsActive
			}
			_ = json.NewEncoder(w).Encode(Table{ID: "tb-2", Number: req.Number, IsActive: isActive})
		case "DELETE /tables/tb-2":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, srv.Client(), nil)
	ctx := context.Background()

	tables, err := client.ListTables(ctx)
	if err != nil {
		t.Fatalf("list tables: %v", err)
	}
	if len(tables) != 1 || tables[0].Number != 4 {
		t.Fatalf("unexpected tables: %+v", tables)
	}

	created, err := client.CreateTable(ctx, TableUpsert{Number: 7, PositionX: 10, PositionY: 20})
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	if created.ID != "tb-2" || created.Number != 7 || created.PositionX != 10 {
		t.Fatalf("unexpected table: %+v", created)
	}

	inactive := false
	updated, err := client.UpdateTable(ctx, "tb-2", TableUpsert{Number: 7, IsActive: &inactive})
	if err != nil {
		t.Fatalf("update table: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("table should be inactive after update")
	}

	if err := client.DeleteTable(ctx, "tb-2"); err != nil {
		t.Fatalf("delete table: %v", err)
	}
}
