package domain

import (
	"context"
	"time"
)

// Meal is a recipe/meal record owned by a single user.
type Meal struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Calories     int       `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fat          float64   `json:"fat"`
	Fiber        float64   `json:"fiber"`
	MealType     string    `json:"mealType"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	PrepTimeMin  int       `json:"prepTimeMin"`
	Difficulty   string    `json:"difficulty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MealRepository is the port for meal persistence.
type MealRepository interface {
	CreateMeal(ctx context.Context, m Meal) (*Meal, error)
	GetMeal(ctx context.Context, userID, id int64) (*Meal, error)
	ListMeals(ctx context.Context, userID int64, offset, limit int) ([]Meal, error)
	DeleteMeal(ctx context.Context, userID, id int64) (bool, error)
}
