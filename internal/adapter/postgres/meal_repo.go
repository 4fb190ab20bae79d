package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitfusion/internal/domain"
)

// CreateMeal inserts a new meal.
func (d *DB) CreateMeal(ctx context.Context, m domain.Meal) (*domain.Meal, error) {
	ingredients, err := encodeStringList(m.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := encodeStringList(m.Instructions)
	if err != nil {
		return nil, err
	}
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO meals (user_id, name, description, calories, protein, carbs, fat, fiber, meal_type, ingredients, instructions, prep_time_min, difficulty, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id;",
		m.UserID, m.Name, m.Description, m.Calories, m.Protein, m.Carbs, m.Fat, m.Fiber, m.MealType, ingredients, steps, m.PrepTimeMin, m.Difficulty, m.CreatedAt.UTC(),
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	if m.Ingredients == nil {
		m.Ingredients = []string{}
	}
	if m.Instructions == nil {
		m.Instructions = []string{}
	}
	return &m, nil
}

// GetMeal returns one meal or nil when no matching row is owned by the user.
func (d *DB) GetMeal(ctx context.Context, userID, id int64) (*domain.Meal, error) {
	var m domain.Meal
	var ingredients, steps string
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, name, description, calories, protein, carbs, fat, fiber, meal_type, ingredients, instructions, prep_time_min, difficulty, created_at FROM meals WHERE id = $1 AND user_id = $2;",
		id, userID,
	).Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Fiber, &m.MealType, &ingredients, &steps, &m.PrepTimeMin, &m.Difficulty, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if m.Ingredients, err = decodeStringList(ingredients); err != nil {
		return nil, err
	}
	if m.Instructions, err = decodeStringList(steps); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMeals returns the user's meals ordered by creation time then ID.
func (d *DB) ListMeals(ctx context.Context, userID int64, offset, limit int) ([]domain.Meal, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, name, description, calories, protein, carbs, fat, fiber, meal_type, ingredients, instructions, prep_time_min, difficulty, created_at FROM meals WHERE user_id = $1 ORDER BY created_at, id OFFSET $2 LIMIT $3;",
		userID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Meal, 0, limit)
	for rows.Next() {
		var m domain.Meal
		var ingredients, steps string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Fiber, &m.MealType, &ingredients, &steps, &m.PrepTimeMin, &m.Difficulty, &m.CreatedAt); err != nil {
			return nil, err
		}
		if m.Ingredients, err = decodeStringList(ingredients); err != nil {
			return nil, err
		}
		if m.Instructions, err = decodeStringList(steps); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeleteMeal removes the meal, reporting whether a row matched.
func (d *DB) DeleteMeal(ctx context.Context, userID, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM meals WHERE id=$1 AND user_id=$2;", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
