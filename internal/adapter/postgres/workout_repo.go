package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitfusion/internal/domain"
)

// CreateWorkout inserts a workout and all of its exercises in one
// transaction, so a failed exercise insert never leaves a bare workout row.
func (d *DB) CreateWorkout(ctx context.Context, w domain.Workout) (*domain.Workout, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	err = tx.QueryRowContext(ctx,
		"INSERT INTO workouts (user_id, name, description, duration_min, calories_burned, workout_type, difficulty, completed, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;",
		w.UserID, w.Name, w.Description, w.DurationMin, w.CaloriesBurned, w.WorkoutType, w.Difficulty, w.Completed, w.CreatedAt.UTC(),
	).Scan(&w.ID)
	if err != nil {
		return nil, err
	}

	for i := range w.Exercises {
		ex := &w.Exercises[i]
		groups, err := encodeStringList(ex.MuscleGroups)
		if err != nil {
			return nil, err
		}
		steps, err := encodeStringList(ex.Instructions)
		if err != nil {
			return nil, err
		}
		err = tx.QueryRowContext(ctx,
			"INSERT INTO exercises (workout_id, name, description, duration_sec, sets, reps, weight, rest_sec, muscle_groups, instructions, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;",
			w.ID, ex.Name, ex.Description, ex.DurationSec, ex.Sets, ex.Reps, ex.Weight, ex.RestSec, groups, steps, ex.CreatedAt.UTC(),
		).Scan(&ex.ID)
		if err != nil {
			return nil, err
		}
		ex.WorkoutID = w.ID
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetWorkout returns the full workout with its exercises in creation order,
// or nil when no matching row is owned by the user.
func (d *DB) GetWorkout(ctx context.Context, userID, id int64) (*domain.Workout, error) {
	var w domain.Workout
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, name, description, duration_min, calories_burned, workout_type, difficulty, completed, created_at FROM workouts WHERE id = $1 AND user_id = $2;",
		id, userID,
	).Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.DurationMin, &w.CaloriesBurned, &w.WorkoutType, &w.Difficulty, &w.Completed, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, workout_id, name, description, duration_sec, sets, reps, weight, rest_sec, muscle_groups, instructions, created_at FROM exercises WHERE workout_id = $1 ORDER BY id;",
		w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	w.Exercises = make([]domain.Exercise, 0, 8)
	for rows.Next() {
		var e domain.Exercise
		var groups, steps string
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.Description, &e.DurationSec, &e.Sets, &e.Reps, &e.Weight, &e.RestSec, &groups, &steps, &e.CreatedAt); err != nil {
			return nil, err
		}
		if e.MuscleGroups, err = decodeStringList(groups); err != nil {
			return nil, err
		}
		if e.Instructions, err = decodeStringList(steps); err != nil {
			return nil, err
		}
		w.Exercises = append(w.Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWorkouts returns workout summaries ordered by creation time then ID.
func (d *DB) ListWorkouts(ctx context.Context, userID int64, offset, limit int) ([]domain.WorkoutSummary, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, duration_min, calories_burned, workout_type, difficulty, completed, created_at FROM workouts WHERE user_id = $1 ORDER BY created_at, id OFFSET $2 LIMIT $3;",
		userID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WorkoutSummary, 0, limit)
	for rows.Next() {
		var s domain.WorkoutSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMin, &s.CaloriesBurned, &s.WorkoutType, &s.Difficulty, &s.Completed, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SaveWorkout writes the mutable workout fields back to storage.
func (d *DB) SaveWorkout(ctx context.Context, w domain.Workout) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE workouts SET name=$1, description=$2, duration_min=$3, calories_burned=$4, workout_type=$5, difficulty=$6, completed=$7 WHERE id=$8 AND user_id=$9;",
		w.Name, w.Description, w.DurationMin, w.CaloriesBurned, w.WorkoutType, w.Difficulty, w.Completed, w.ID, w.UserID)
	return err
}

// DeleteWorkout removes the workout; its exercises go with it via the
// foreign-key cascade.
func (d *DB) DeleteWorkout(ctx context.Context, userID, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM workouts WHERE id=$1 AND user_id=$2;", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// MarkWorkoutCompleted sets completed=true, reporting whether a row matched.
func (d *DB) MarkWorkoutCompleted(ctx context.Context, userID, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "UPDATE workouts SET completed=TRUE WHERE id=$1 AND user_id=$2;", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// WorkoutTotals aggregates the user's workouts. Duration and calories sum
// over completed workouts only.
func (d *DB) WorkoutTotals(ctx context.Context, userID int64) (domain.WorkoutTotals, error) {
	var t domain.WorkoutTotals
	err := d.sql.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(*) FILTER (WHERE completed), COALESCE(SUM(duration_min) FILTER (WHERE completed), 0), COALESCE(SUM(calories_burned) FILTER (WHERE completed), 0) FROM workouts WHERE user_id = $1;",
		userID,
	).Scan(&t.Total, &t.Completed, &t.DurationMin, &t.CaloriesBurned)
	return t, err
}
