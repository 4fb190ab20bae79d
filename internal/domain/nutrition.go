package domain

import (
	"context"
	"time"
)

// NutritionLog is a single nutrition intake record.
type NutritionLog struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Date        time.Time `json:"date"`
	Calories    int       `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	WaterLiters float64   `json:"waterLiters"`
	Notes       string    `json:"notes"`
}

// NutritionTotals aggregates intake over a local calendar day.
type NutritionTotals struct {
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	WaterLiters float64 `json:"waterLiters"`
}

// NutritionRepository is the port for nutrition-log persistence.
type NutritionRepository interface {
	AddNutritionLog(ctx context.Context, entry NutritionLog) (*NutritionLog, error)
	ListRecentNutritionLogs(ctx context.Context, userID int64, limit int) ([]NutritionLog, error)
	NutritionTotalsForLocalDay(ctx context.Context, userID int64, localDay string) (NutritionTotals, error)
}
