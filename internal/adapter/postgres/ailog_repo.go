package postgres

import (
	"context"

	"fitfusion/internal/domain"
)

// AddFoodScan inserts a new food-scan log entry.
func (d *DB) AddFoodScan(ctx context.Context, scan domain.FoodScanLog) (*domain.FoodScanLog, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO food_scanner_logs (user_id, food_name, confidence_score, calories, protein, carbs, fat, fiber, nutrition_grade, image_path, scanned_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;",
		scan.UserID, scan.FoodName, scan.ConfidenceScore, scan.Calories, scan.Protein, scan.Carbs, scan.Fat, scan.Fiber, scan.NutritionGrade, scan.ImagePath, scan.ScannedAt.UTC(),
	).Scan(&scan.ID)
	if err != nil {
		return nil, err
	}
	return &scan, nil
}

// ListRecentFoodScans returns the most recent scans up to limit.
func (d *DB) ListRecentFoodScans(ctx context.Context, userID int64, limit int) ([]domain.FoodScanLog, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, food_name, confidence_score, calories, protein, carbs, fat, fiber, nutrition_grade, image_path, scanned_at FROM food_scanner_logs WHERE user_id = $1 ORDER BY scanned_at DESC, id DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FoodScanLog, 0, limit)
	for rows.Next() {
		var s domain.FoodScanLog
		if err := rows.Scan(&s.ID, &s.UserID, &s.FoodName, &s.ConfidenceScore, &s.Calories, &s.Protein, &s.Carbs, &s.Fat, &s.Fiber, &s.NutritionGrade, &s.ImagePath, &s.ScannedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AddChatMessage inserts one conversation entry.
func (d *DB) AddChatMessage(ctx context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error) {
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO ai_chat_logs (user_id, message_type, content, response_time, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;",
		msg.UserID, msg.MessageType, msg.Content, msg.ResponseTime, msg.CreatedAt.UTC(),
	).Scan(&msg.ID)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListRecentChatMessages returns the newest messages first, up to limit.
func (d *DB) ListRecentChatMessages(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, message_type, content, response_time, created_at FROM ai_chat_logs WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.ChatMessage, 0, limit)
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.MessageType, &m.Content, &m.ResponseTime, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
