package postgres

import (
	"context"
	"time"

	"fitfusion/internal/domain"
)

// AddNutritionLog inserts a new intake entry.
func (d *DB) AddNutritionLog(ctx context.Context, entry domain.NutritionLog) (*domain.NutritionLog, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO nutrition_logs (user_id, date, calories, protein, carbs, fat, fiber, water_liters, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;",
		entry.UserID, entry.Date.UTC(), entry.Calories, entry.Protein, entry.Carbs, entry.Fat, entry.Fiber, entry.WaterLiters, entry.Notes,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListRecentNutritionLogs returns the most recent entries up to limit.
func (d *DB) ListRecentNutritionLogs(ctx context.Context, userID int64, limit int) ([]domain.NutritionLog, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, date, calories, protein, carbs, fat, fiber, water_liters, notes FROM nutrition_logs WHERE user_id = $1 ORDER BY date DESC, id DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.NutritionLog, 0, limit)
	for rows.Next() {
		var e domain.NutritionLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.Fiber, &e.WaterLiters, &e.Notes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// NutritionTotalsForLocalDay aggregates intake over a local calendar day.
func (d *DB) NutritionTotalsForLocalDay(ctx context.Context, userID int64, localDay string) (domain.NutritionTotals, error) {
	var t domain.NutritionTotals
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return t, err
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	err = d.sql.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0), COALESCE(SUM(carbs), 0), COALESCE(SUM(fat), 0), COALESCE(SUM(fiber), 0), COALESCE(SUM(water_liters), 0) FROM nutrition_logs WHERE user_id = $1 AND date >= $2 AND date < $3;",
		userID, dayStart.UTC(), dayEnd.UTC(),
	).Scan(&t.Calories, &t.Protein, &t.Carbs, &t.Fat, &t.Fiber, &t.WaterLiters)
	return t, err
}
