package adapthttp

import (
	"net/http"

	"fitfusion/internal/app"
)

func (s *Server) handleMeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	switch r.Method {
	case http.MethodGet:
		skip := intQuery(r, "skip", 0)
		limit := intQuery(r, "limit", 100)
		items, err := s.meals.List(ctx, user.ID, skip, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Name         string   `json:"name"`
			Description  string   `json:"description"`
			Calories     int      `json:"calories"`
			Protein      float64  `json:"protein"`
			Carbs        float64  `json:"carbs"`
			Fat          float64  `json:"fat"`
			Fiber        float64  `json:"fiber"`
			MealType     string   `json:"mealType"`
			Ingredients  []string `json:"ingredients"`
			Instructions []string `json:"instructions"`
			PrepTimeMin  int      `json:"prepTimeMin"`
			Difficulty   string   `json:"difficulty"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		meal, err := s.meals.Create(ctx, user.ID, app.CreateMealInput(body))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, meal)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleMealByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	id, action, err := idFromPath(r.URL.Path, "/meals")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if action != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		meal, err := s.meals.Get(ctx, user.ID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, meal)

	case http.MethodDelete:
		if err := s.meals.Delete(ctx, user.ID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
