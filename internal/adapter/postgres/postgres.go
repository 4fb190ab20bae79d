package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, email TEXT UNIQUE NOT NULL, username TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, full_name TEXT NOT NULL DEFAULT '', is_active BOOLEAN NOT NULL DEFAULT TRUE, created_at TIMESTAMPTZ NOT NULL, updated_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS workouts (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, name TEXT NOT NULL, description TEXT NOT NULL DEFAULT '', duration_min INTEGER NOT NULL, calories_burned INTEGER NOT NULL DEFAULT 0, workout_type TEXT NOT NULL, difficulty TEXT NOT NULL, completed BOOLEAN NOT NULL DEFAULT FALSE, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_workouts_user_id ON workouts(user_id);",
		"CREATE TABLE IF NOT EXISTS exercises (id BIGSERIAL PRIMARY KEY, workout_id BIGINT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE, name TEXT NOT NULL, description TEXT NOT NULL DEFAULT '', duration_sec INTEGER NOT NULL DEFAULT 0, sets INTEGER NOT NULL DEFAULT 0, reps INTEGER NOT NULL DEFAULT 0, weight DOUBLE PRECISION NOT NULL DEFAULT 0, rest_sec INTEGER NOT NULL DEFAULT 0, muscle_groups TEXT NOT NULL DEFAULT '[]', instructions TEXT NOT NULL DEFAULT '[]', created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_exercises_workout_id ON exercises(workout_id);",
		"CREATE TABLE IF NOT EXISTS meals (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, name TEXT NOT NULL, description TEXT NOT NULL DEFAULT '', calories INTEGER NOT NULL DEFAULT 0, protein DOUBLE PRECISION NOT NULL DEFAULT 0, carbs DOUBLE PRECISION NOT NULL DEFAULT 0, fat DOUBLE PRECISION NOT NULL DEFAULT 0, fiber DOUBLE PRECISION NOT NULL DEFAULT 0, meal_type TEXT NOT NULL, ingredients TEXT NOT NULL DEFAULT '[]', instructions TEXT NOT NULL DEFAULT '[]', prep_time_min INTEGER NOT NULL DEFAULT 0, difficulty TEXT NOT NULL DEFAULT '', created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_meals_user_id ON meals(user_id);",
		"CREATE TABLE IF NOT EXISTS nutrition_logs (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, date TIMESTAMPTZ NOT NULL, calories INTEGER NOT NULL DEFAULT 0, protein DOUBLE PRECISION NOT NULL DEFAULT 0, carbs DOUBLE PRECISION NOT NULL DEFAULT 0, fat DOUBLE PRECISION NOT NULL DEFAULT 0, fiber DOUBLE PRECISION NOT NULL DEFAULT 0, water_liters DOUBLE PRECISION NOT NULL DEFAULT 0, notes TEXT NOT NULL DEFAULT '');",
		"CREATE INDEX IF NOT EXISTS idx_nutrition_logs_user_id_date ON nutrition_logs(user_id, date);",
		"CREATE TABLE IF NOT EXISTS fitness_goals (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, goal_type TEXT NOT NULL, target_value DOUBLE PRECISION NOT NULL, current_value DOUBLE PRECISION NOT NULL DEFAULT 0, unit TEXT NOT NULL DEFAULT '', deadline TIMESTAMPTZ, is_completed BOOLEAN NOT NULL DEFAULT FALSE, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_fitness_goals_user_id ON fitness_goals(user_id);",
		"CREATE TABLE IF NOT EXISTS food_scanner_logs (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, food_name TEXT NOT NULL, confidence_score DOUBLE PRECISION NOT NULL DEFAULT 0, calories INTEGER NOT NULL DEFAULT 0, protein DOUBLE PRECISION NOT NULL DEFAULT 0, carbs DOUBLE PRECISION NOT NULL DEFAULT 0, fat DOUBLE PRECISION NOT NULL DEFAULT 0, fiber DOUBLE PRECISION NOT NULL DEFAULT 0, nutrition_grade TEXT NOT NULL DEFAULT '', image_path TEXT NOT NULL DEFAULT '', scanned_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_food_scanner_logs_user_id ON food_scanner_logs(user_id);",
		"CREATE TABLE IF NOT EXISTS ai_chat_logs (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, message_type TEXT NOT NULL CHECK(message_type IN ('user','ai')), content TEXT NOT NULL, response_time DOUBLE PRECISION NOT NULL DEFAULT 0, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_ai_chat_logs_user_id_created_at ON ai_chat_logs(user_id, created_at);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
