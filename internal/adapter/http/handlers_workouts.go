package adapthttp

import (
	"net/http"
	"time"

	"fitfusion/internal/app"
	"fitfusion/internal/domain"
	"fitfusion/internal/observability"
)

type exercisePayload struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	DurationSec  int      `json:"durationSec"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	Weight       float64  `json:"weight"`
	RestSec      int      `json:"restSec"`
	MuscleGroups []string `json:"muscleGroups"`
	Instructions []string `json:"instructions"`
}

type workoutPayload struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	DurationMin    int               `json:"durationMin"`
	CaloriesBurned int               `json:"caloriesBurned"`
	WorkoutType    string            `json:"workoutType"`
	Difficulty     string            `json:"difficulty"`
	Exercises      []exercisePayload `json:"exercises"`
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	switch r.Method {
	case http.MethodGet:
		skip := intQuery(r, "skip", 0)
		limit := intQuery(r, "limit", 100)
		items, err := s.workouts.List(ctx, user.ID, skip, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body workoutPayload
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		in := app.CreateWorkoutInput{
			Name:           body.Name,
			Description:    body.Description,
			DurationMin:    body.DurationMin,
			CaloriesBurned: body.CaloriesBurned,
			WorkoutType:    body.WorkoutType,
			Difficulty:     body.Difficulty,
		}
		for _, ex := range body.Exercises {
			in.Exercises = append(in.Exercises, app.ExerciseInput(ex))
		}
		workout, err := s.workouts.Create(ctx, user.ID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		observability.RecordWorkoutPersisted(workout.CreatedAt)
		writeJSON(w, http.StatusCreated, workout)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWorkoutByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	id, action, err := idFromPath(r.URL.Path, "/workouts")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if action == "complete" {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := s.workouts.Complete(ctx, user.ID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		observability.RecordWorkoutCompleted(time.Now())
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}
	if action != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		workout, err := s.workouts.Get(ctx, user.ID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, workout)

	case http.MethodPut:
		var upd domain.WorkoutUpdate
		if err := parseJSON(r, &upd); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		workout, err := s.workouts.Update(ctx, user.ID, id, upd)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, workout)

	case http.MethodDelete:
		if err := s.workouts.Delete(ctx, user.ID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWorkoutStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	stats, err := s.workouts.Stats(r.Context(), userFrom(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
