package adapthttp

import (
	"net/http"
	"time"

	"fitfusion/internal/app"
)

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.goals.List(ctx, user.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			GoalType     string    `json:"goalType"`
			TargetValue  float64   `json:"targetValue"`
			CurrentValue float64   `json:"currentValue"`
			Unit         string    `json:"unit"`
			Deadline     time.Time `json:"deadline"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		goal, err := s.goals.Create(ctx, user.ID, app.CreateGoalInput(body))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, goal)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGoalByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	id, action, err := idFromPath(r.URL.Path, "/goals")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if action == "progress" {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			CurrentValue float64 `json:"currentValue"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		goal, err := s.goals.UpdateProgress(ctx, user.ID, id, body.CurrentValue)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)
		return
	}
	if action != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		goal, err := s.goals.Get(ctx, user.ID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goal)

	case http.MethodDelete:
		if err := s.goals.Delete(ctx, user.ID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
