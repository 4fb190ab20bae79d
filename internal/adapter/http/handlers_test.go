package adapthttp_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapthttp "fitfusion/internal/adapter/http"
	"fitfusion/internal/adapter/memory"
	"fitfusion/internal/app"
)

// ---------------------------------------------------------------------------
// Test-server helpers
// ---------------------------------------------------------------------------

func newServices(db *memory.DB) adapthttp.Services {
	return adapthttp.Services{
		Auth: app.NewAuthService(db, app.TokenConfig{
			Secret: "test-secret", Issuer: "fitfusion-test", TTL: time.Hour,
		}),
		Workouts:  app.NewWorkoutService(db),
		Meals:     app.NewMealService(db),
		Nutrition: app.NewNutritionService(db),
		Goals:     app.NewGoalService(db),
		Scanner:   app.NewScannerService(db),
		Coach:     app.NewCoachService(db, app.RuleResponder{}),
	}
}

// newTestServer runs the API with auth disabled; requests act as user 1.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := adapthttp.New(newServices(memory.New()), adapthttp.OIDCConfig{}, "*").WithoutAuth()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// newAuthServer runs the API with bearer auth enabled.
func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := adapthttp.New(newServices(memory.New()), adapthttp.OIDCConfig{}, "*")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

func doJSON(t *testing.T, method, url string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
}

func TestWorkoutCRUDOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	// Create.
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/workouts", map[string]any{
		"name": "Push Day", "durationMin": 45, "caloriesBurned": 300,
		"workoutType": "strength", "difficulty": "medium",
		"exercises": []map[string]any{
			{"name": "Bench Press", "sets": 4, "reps": 8, "muscleGroups": []string{"chest"}},
		},
	})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	created := decodeBody(t, resp)
	id := int64(created["id"].(float64))
	if id == 0 {
		t.Fatal("expected assigned workout id")
	}
	if exs, ok := created["exercises"].([]any); !ok || len(exs) != 1 {
		t.Fatalf("expected 1 exercise in response, got %v", created["exercises"])
	}

	// List.
	resp, err := http.Get(ts.URL + "/api/v1/workouts")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if items, ok := decodeBody(t, resp)["items"].([]any); !ok || len(items) != 1 {
		t.Fatalf("expected 1 workout in list")
	}

	// Partial update.
	resp = doJSON(t, http.MethodPut, ts.URL+"/api/v1/workouts/1", map[string]any{"durationMin": 50})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	updated := decodeBody(t, resp)
	if updated["durationMin"] != float64(50) || updated["name"] != "Push Day" {
		t.Fatalf("partial update wrong: %v", updated)
	}

	// Complete.
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/workouts/1/complete", nil)
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d", resp.StatusCode)
	}

	// Stats.
	resp, err = http.Get(ts.URL + "/api/v1/workouts/stats/summary")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	stats := decodeBody(t, resp)
	if stats["totalWorkouts"] != float64(1) || stats["completionRate"] != float64(100) {
		t.Fatalf("unexpected stats: %v", stats)
	}

	// Delete.
	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/v1/workouts/1", nil)
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp, err = http.Get(ts.URL + "/api/v1/workouts/1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestWorkoutValidationOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{"durationMin": 30, "workoutType": "cardio", "difficulty": "easy"}},
		{"zero duration", map[string]any{"name": "Run", "durationMin": 0, "workoutType": "cardio", "difficulty": "easy"}},
		{"unknown field", map[string]any{"name": "Run", "durationMin": 30, "workoutType": "cardio", "difficulty": "easy", "bogus": 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/workouts", tc.payload)
			defer resp.Body.Close() //nolint:errcheck
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestGoalProgressOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/goals", map[string]any{
		"goalType": "weight_loss", "targetValue": 10, "currentValue": 2, "unit": "kg",
	})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPut, ts.URL+"/api/v1/goals/1/progress", map[string]any{"currentValue": 12})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("progress: expected 200, got %d", resp.StatusCode)
	}
	goal := decodeBody(t, resp)
	if goal["isCompleted"] != true || goal["progress"] != float64(100) {
		t.Fatalf("expected auto-completed goal at 100%%, got %v", goal)
	}
}

func TestNutritionDailySummaryOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	day := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

	for _, calories := range []int{400, 600} {
		resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/nutrition", map[string]any{
			"date": day.Format(time.RFC3339), "calories": calories,
		})
		resp.Body.Close() //nolint:errcheck
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("log: expected 201, got %d", resp.StatusCode)
		}
	}

	resp, err := http.Get(ts.URL + "/api/v1/nutrition/daily-summary?day=" + day.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body := decodeBody(t, resp)
	totals, ok := body["totals"].(map[string]any)
	if !ok || totals["calories"] != float64(1000) {
		t.Fatalf("unexpected summary: %v", body)
	}
}

func TestCoachChatOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/coach/chat", map[string]any{
		"message": "plan my next workout",
	})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chat: expected 200, got %d", resp.StatusCode)
	}
	reply := decodeBody(t, resp)
	if reply["messageType"] != "ai" || reply["content"] == "" {
		t.Fatalf("unexpected reply: %v", reply)
	}

	resp, err := http.Get(ts.URL + "/api/v1/coach/history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	items, ok := decodeBody(t, resp)["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected user+ai messages in history, got %v", items)
	}
}

func TestAuthRequired(t *testing.T) {
	ts := newAuthServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/workouts")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/workouts", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", resp.StatusCode)
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	ts := newAuthServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/auth/register", map[string]any{
		"email": "a@example.com", "username": "alice", "password": "password123", "fullName": "Alice",
	})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/auth/login", map[string]any{
		"username": "alice", "password": "password123",
	})
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	token, _ := body["accessToken"].(string)
	if token == "" || body["tokenType"] != "bearer" {
		t.Fatalf("unexpected login response: %v", body)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	defer resp2.Body.Close() //nolint:errcheck
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp2.StatusCode)
	}
	me := decodeBody(t, resp2)
	if me["username"] != "alice" {
		t.Fatalf("unexpected user: %v", me)
	}
}
