package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitfusion/internal/domain"
)

// MealService encapsulates meal CRUD use cases.
type MealService struct {
	repo domain.MealRepository
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.MealRepository) *MealService {
	return &MealService{repo: repo}
}

// CreateMealInput carries the fields for a new meal.
type CreateMealInput struct {
	Name         string
	Description  string
	Calories     int
	Protein      float64
	Carbs        float64
	Fat          float64
	Fiber        float64
	MealType     string
	Ingredients  []string
	Instructions []string
	PrepTimeMin  int
	Difficulty   string
}

// Create validates and stores a new meal.
func (s *MealService) Create(ctx context.Context, userID int64, in CreateMealInput) (*domain.Meal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.MealType) == "" {
		return nil, fmt.Errorf("%w: mealType is required", ErrValidation)
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 || in.Fiber < 0 {
		return nil, fmt.Errorf("%w: nutrition values must be >= 0", ErrValidation)
	}
	if in.PrepTimeMin < 0 {
		return nil, fmt.Errorf("%w: prepTimeMin must be >= 0", ErrValidation)
	}

	m := domain.Meal{
		UserID:       userID,
		Name:         in.Name,
		Description:  in.Description,
		Calories:     in.Calories,
		Protein:      in.Protein,
		Carbs:        in.Carbs,
		Fat:          in.Fat,
		Fiber:        in.Fiber,
		MealType:     in.MealType,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		PrepTimeMin:  in.PrepTimeMin,
		Difficulty:   in.Difficulty,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.CreateMeal(ctx, m)
}

// List returns the user's meals ordered by creation time.
func (s *MealService) List(ctx context.Context, userID int64, skip, limit int) ([]domain.Meal, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	return s.repo.ListMeals(ctx, userID, skip, limit)
}

// Get returns one meal or ErrMealNotFound.
func (s *MealService) Get(ctx context.Context, userID, id int64) (*domain.Meal, error) {
	m, err := s.repo.GetMeal(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMealNotFound
	}
	return m, nil
}

// Delete removes one meal.
func (s *MealService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.DeleteMeal(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}
