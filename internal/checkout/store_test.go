package checkout

import (
	"testing"
	"time"
)

// TestStoreCreateGet verifies session lookup behavior.
func TestStoreCreateGet(t *testing.T) {
	t.Parallel()

	st := NewStore(0)
	sess := st.Create("ev-1", "Noche de Rock", 1000, nil)
	if sess.id == "" {
		t.Fatalf("session id should be assigned")
	}

	got, err := st.Get(sess.id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != sess {
		t.Fatalf("get returned different session")
	}

	if _, err := st.Get("nope"); err != ErrSessionNotFound {
		t.Fatalf("unknown id: %v, want ErrSessionNotFound", err)
	}
}

// TestStoreRemoveClosesSession verifies removal tears the session down.
func TestStoreRemoveClosesSession(t *testing.T) {
	t.Parallel()

	st := NewStore(0)
	sess := st.Create("ev-1", "Noche de Rock", 1000, nil)
	sess.mu.Lock()
	sess.form.SetField(FieldBuyerName, "Ana")
	sess.mu.Unlock()

	st.Remove(sess.id)

	if _, err := st.Get(sess.id); err != ErrSessionNotFound {
		t.Fatalf("get after remove: %v", err)
	}
	view := sess.View()
	if view.State != StateClosed {
		t.Fatalf("state = %s, want closed", view.State)
	}
	if view.Buyer.BuyerName != "" {
		t.Fatalf("buyer draft should be discarded")
	}

	// Removing twice is a no-op.
	st.Remove(sess.id)
}

// TestStoreSweepsStaleSessions verifies the TTL cleanup.
func TestStoreSweepsStaleSessions(t *testing.T) {
	t.Parallel()

	st := NewStore(10 * time.Millisecond)
	stale := st.Create("ev-1", "Noche de Rock", 1000, nil)

	time.Sleep(20 * time.Millisecond)

	// Creating a new session triggers the sweep.
	fresh := st.Create("ev-2", "Festival", 500, nil)

	if _, err := st.Get(stale.id); err != ErrSessionNotFound {
		t.Fatalf("stale session should be swept, got %v", err)
	}
	if _, err := st.Get(fresh.id); err != nil {
		t.Fatalf("fresh session should survive: %v", err)
	}
	if got := stale.View().State; got != StateClosed {
		t.Fatalf("swept session state = %s, want closed", got)
	}
}

// TestSessionViewDeepCopiesErrors verifies view isolation.
func TestSessionViewDeepCopiesErrors(t *testing.T) {
	t.Parallel()

	st := NewStore(0)
	sess := st.Create("ev-1", "Noche de Rock", 1000, nil)
	sess.mu.Lock()
	sess.form.SetField(FieldBuyerEmail, "bad")
	sess.mu.Unlock()

	view := sess.View()
	view.Buyer.FieldErrors[FieldBuyerEmail] = "mutated"

	if got := sess.View().Buyer.FieldErrors[FieldBuyerEmail]; got == "mutated" {
		t.Fatalf("view must not share the error map with the session")
	}
}
