package app

import (
	"context"
	"fmt"
	"time"

	"fitfusion/internal/domain"
)

// NutritionService encapsulates nutrition-log use cases.
type NutritionService struct {
	repo domain.NutritionRepository
}

// NewNutritionService creates a NutritionService backed by the given repository.
func NewNutritionService(repo domain.NutritionRepository) *NutritionService {
	return &NutritionService{repo: repo}
}

// LogIntakeInput carries the fields for one nutrition log entry.
type LogIntakeInput struct {
	Date        time.Time
	Calories    int
	Protein     float64
	Carbs       float64
	Fat         float64
	Fiber       float64
	WaterLiters float64
	Notes       string
}

// Log validates and stores an intake entry. A zero Date defaults to now.
func (s *NutritionService) Log(ctx context.Context, userID int64, in LogIntakeInput) (*domain.NutritionLog, error) {
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 || in.Fiber < 0 || in.WaterLiters < 0 {
		return nil, fmt.Errorf("%w: intake values must be >= 0", ErrValidation)
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := domain.NutritionLog{
		UserID:      userID,
		Date:        date,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		Fiber:       in.Fiber,
		WaterLiters: in.WaterLiters,
		Notes:       in.Notes,
	}
	return s.repo.AddNutritionLog(ctx, entry)
}

// ListRecent returns the most recent log entries up to limit.
func (s *NutritionService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.NutritionLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListRecentNutritionLogs(ctx, userID, limit)
}

// DailySummary returns aggregate intake totals for the given local day
// (format 2006-01-02).
func (s *NutritionService) DailySummary(ctx context.Context, userID int64, localDay string) (*domain.NutritionTotals, error) {
	totals, err := s.repo.NutritionTotalsForLocalDay(ctx, userID, localDay)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
