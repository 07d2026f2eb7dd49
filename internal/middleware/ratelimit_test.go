package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitInMemory(t *testing.T) {
	t.Parallel()

	mw, err := RateLimitInMemory("2-S")
	if err != nil {
		t.Fatalf("RateLimitInMemory() unexpected error: %v", err)
	}

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/testuser/analysis", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests = %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
	}
}

func TestRateLimitInMemoryDefaultRate(t *testing.T) {
	t.Parallel()

	if _, err := RateLimitInMemory(""); err != nil {
		t.Fatalf("empty rate should use the default, got error: %v", err)
	}
}

func TestRateLimitInMemoryBadFormat(t *testing.T) {
	t.Parallel()

	if _, err := RateLimitInMemory("not-a-rate"); err == nil {
		t.Fatal("expected error for malformed rate string, got nil")
	}
}
