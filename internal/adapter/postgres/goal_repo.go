package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitfusion/internal/domain"
)

// CreateGoal inserts a new fitness goal. A zero deadline is stored as NULL.
func (d *DB) CreateGoal(ctx context.Context, g domain.FitnessGoal) (*domain.FitnessGoal, error) {
	deadline := sql.NullTime{Time: g.Deadline.UTC(), Valid: !g.Deadline.IsZero()}
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO fitness_goals (user_id, goal_type, target_value, current_value, unit, deadline, is_completed, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;",
		g.UserID, g.GoalType, g.TargetValue, g.CurrentValue, g.Unit, deadline, g.IsCompleted, g.CreatedAt.UTC(),
	).Scan(&g.ID)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetGoal returns one goal or nil when no matching row is owned by the user.
func (d *DB) GetGoal(ctx context.Context, userID, id int64) (*domain.FitnessGoal, error) {
	var g domain.FitnessGoal
	var deadline sql.NullTime
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, goal_type, target_value, current_value, unit, deadline, is_completed, created_at FROM fitness_goals WHERE id = $1 AND user_id = $2;",
		id, userID,
	).Scan(&g.ID, &g.UserID, &g.GoalType, &g.TargetValue, &g.CurrentValue, &g.Unit, &deadline, &g.IsCompleted, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if deadline.Valid {
		g.Deadline = deadline.Time
	}
	return &g, nil
}

// ListGoals returns all of the user's goals ordered by creation time then ID.
func (d *DB) ListGoals(ctx context.Context, userID int64) ([]domain.FitnessGoal, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, goal_type, target_value, current_value, unit, deadline, is_completed, created_at FROM fitness_goals WHERE user_id = $1 ORDER BY created_at, id;",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FitnessGoal, 0, 8)
	for rows.Next() {
		var g domain.FitnessGoal
		var deadline sql.NullTime
		if err := rows.Scan(&g.ID, &g.UserID, &g.GoalType, &g.TargetValue, &g.CurrentValue, &g.Unit, &deadline, &g.IsCompleted, &g.CreatedAt); err != nil {
			return nil, err
		}
		if deadline.Valid {
			g.Deadline = deadline.Time
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SaveGoalProgress writes current_value and is_completed back to storage.
func (d *DB) SaveGoalProgress(ctx context.Context, g domain.FitnessGoal) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE fitness_goals SET current_value=$1, is_completed=$2 WHERE id=$3 AND user_id=$4;",
		g.CurrentValue, g.IsCompleted, g.ID, g.UserID)
	return err
}

// DeleteGoal removes the goal, reporting whether a row matched.
func (d *DB) DeleteGoal(ctx context.Context, userID, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM fitness_goals WHERE id=$1 AND user_id=$2;", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
