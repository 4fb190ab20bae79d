package adapthttp

import (
	"net/http"
	"time"

	"fitfusion/internal/app"
)

func (s *Server) handleNutrition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	switch r.Method {
	case http.MethodGet:
		limit := intQuery(r, "limit", 20)
		items, err := s.nutrition.ListRecent(ctx, user.ID, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Date        time.Time `json:"date"`
			Calories    int       `json:"calories"`
			Protein     float64   `json:"protein"`
			Carbs       float64   `json:"carbs"`
			Fat         float64   `json:"fat"`
			Fiber       float64   `json:"fiber"`
			WaterLiters float64   `json:"waterLiters"`
			Notes       string    `json:"notes"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, err := s.nutrition.Log(ctx, user.ID, app.LogIntakeInput(body))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleNutritionDailySummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	day := r.URL.Query().Get("day")
	if day == "" {
		day = localDayString(time.Now())
	}
	totals, err := s.nutrition.DailySummary(r.Context(), userFrom(r).ID, day)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day, "totals": totals})
}
