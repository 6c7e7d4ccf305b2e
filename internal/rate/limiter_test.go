package rate

import (
	"testing"
	"time"
)

// TestWindowLimiter verifies the per-key window behavior.
func TestWindowLimiter(t *testing.T) {
	t.Parallel()

	l := NewWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("a") {
			t.Fatalf("call %d for key a should pass", i+1)
		}
	}
	if l.Allow("a") {
		t.Fatalf("fourth call for key a should be limited")
	}
	if !l.Allow("b") {
		t.Fatalf("independent key should pass")
	}
}

// TestWindowLimiterResets verifies the window rollover.
func TestWindowLimiterResets(t *testing.T) {
	t.Parallel()

	l := NewWindowLimiter(1, 20*time.Millisecond)
	if !l.Allow("a") {
		t.Fatalf("first call should pass")
	}
	if l.Allow("a") {
		t.Fatalf("second call inside window should be limited")
	}

	time.Sleep(30 * time.Millisecond)
	if !l.Allow("a") {
		t.Fatalf("call after window should pass")
	}
}
