package adapthttp

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK"))
	})

	handler := loggingMiddleware(nextHandler)

	// Capture log output
	var buf bytes.Buffer
	originalOutput := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(originalOutput)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("Expected X-Request-Id header to be set")
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "GET") || !strings.Contains(logOutput, "/test-path") || !strings.Contains(logOutput, "418") {
		t.Errorf("Log output missing expected fields. Got: %s", logOutput)
	}
}

func TestIDFromPath(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		prefix     string
		wantID     int64
		wantAction string
		wantErr    bool
	}{
		{"plain id", "/workouts/42", "/workouts", 42, "", false},
		{"trailing slash", "/workouts/42/", "/workouts", 42, "", false},
		{"with action", "/workouts/42/complete", "/workouts", 42, "complete", false},
		{"missing id", "/workouts/", "/workouts", 0, "", true},
		{"non-numeric", "/workouts/abc", "/workouts", 0, "", true},
		{"zero id", "/workouts/0", "/workouts", 0, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, action, err := idFromPath(tc.path, tc.prefix)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tc.wantID || action != tc.wantAction {
				t.Fatalf("got id=%d action=%q, want id=%d action=%q", id, action, tc.wantID, tc.wantAction)
			}
		})
	}
}
