package adapthttp

import (
	"net/http"

	"fitfusion/internal/app"
)

func (s *Server) handleScannerLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(r)

	switch r.Method {
	case http.MethodGet:
		limit := intQuery(r, "limit", 20)
		items, err := s.scanner.ListRecent(ctx, user.ID, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			FoodName        string  `json:"foodName"`
			ConfidenceScore float64 `json:"confidenceScore"`
			Calories        int     `json:"calories"`
			Protein         float64 `json:"protein"`
			Carbs           float64 `json:"carbs"`
			Fat             float64 `json:"fat"`
			Fiber           float64 `json:"fiber"`
			NutritionGrade  string  `json:"nutritionGrade"`
			ImagePath       string  `json:"imagePath"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		scan, err := s.scanner.Record(ctx, user.ID, app.RecordScanInput(body))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, scan)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCoachChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	reply, err := s.coach.Send(r.Context(), userFrom(r).ID, body.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleCoachHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 50)
	items, err := s.coach.History(r.Context(), userFrom(r).ID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
