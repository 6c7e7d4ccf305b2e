package venueapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestClientAuthHeader verifies bearer-token behavior.
func TestClientAuthHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Event{})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, srv.Client(), nil)
	if _, err := client.ListEvents(context.Background()); err != nil {
		t.Fatalf("list events: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("unauthenticated client sent auth header %q", gotAuth)
	}

	authed := client.WithToken("tok-123")
	if _, err := authed.ListEvents(context.Background()); err != nil {
		t.Fatalf("list events with token: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("auth header = %q, want Bearer tok-123", gotAuth)
	}

	// WithToken must not mutate the original client.
	if _, err := client.ListEvents(context.Background()); err != nil {
		t.Fatalf("list events: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("original client leaked the token: %q", gotAuth)
	}
}

// TestClientAPIError verifies non-2xx handling and message extraction.
func TestClientAPIError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"json message", http.StatusBadRequest, `{"message":"Cupón expirado"}`, "Cupón expirado"},
		{"json error key", http.StatusNotFound, `{"error":"not found"}`, "not found"},
		{"plain text", http.StatusBadGateway, "upstream down", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(Config{BaseURL: srv.URL}, srv.Client(), nil)
			_, err := client.GetEvent(context.Background(), "ev-1")
			if err == nil {
				t.Fatalf("expected error")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error is not an APIError: %v", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Fatalf("status = %d, want %d", apiErr.StatusCode, tc.status)
			}
			if apiErr.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", apiErr.Message, tc.wantMessage)
			}
		})
	}
}

// TestClientDecodesResponse verifies request/response plumbing.
func TestClientDecodesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ticket" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content type = %q", ct)
		}
		var req CreateTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.BuyerDNI != "12345678" {
			t.Fatalf("buyerDni = %q", req.BuyerDNI)
		}
		_ = json.NewEncoder(w).Encode(Ticket{ID: 7, EventID: req.EventID})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL}, srv.Client(), nil)
	ticket, err := client.CreateTicket(context.Background(), CreateTicketRequest{
		EventID:       "ev-1",
		BuyerName:     "Ana",
		BuyerLastName: "García",
		BuyerEmail:    "ana@example.com",
		BuyerDNI:      "12345678",
	})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	if ticket.ID != 7 || ticket.EventID != "ev-1" {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
}

// TestUserMessage verifies fallback behavior.
func TestUserMessage(t *testing.T) {
	t.Parallel()

	withMessage := &APIError{StatusCode: 400, Message: "Cupón inválido para este evento"}
	if got := UserMessage(withMessage, "fallback"); got != "Cupón inválido para este evento" {
		t.Fatalf("got %q", got)
	}

	wrapped := fmt.Errorf("apply coupon: %w", withMessage)
	if got := UserMessage(wrapped, "fallback"); got != "Cupón inválido para este evento" {
		t.Fatalf("wrapped: got %q", got)
	}

	noMessage := &APIError{StatusCode: 502, Body: "bad gateway"}
	if got := UserMessage(noMessage, "fallback"); got != "fallback" {
		t.Fatalf("no message: got %q", got)
	}

	if got := UserMessage(errors.New("dial tcp: timeout"), "fallback"); got != "fallback" {
		t.Fatalf("transport error: got %q", got)
	}
}
