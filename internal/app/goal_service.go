package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitfusion/internal/domain"
)

// GoalService encapsulates fitness-goal use cases.
type GoalService struct {
	repo domain.GoalRepository
}

// NewGoalService creates a GoalService backed by the given repository.
func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// CreateGoalInput carries the fields for a new fitness goal.
type CreateGoalInput struct {
	GoalType     string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Deadline     time.Time
}

// Create validates and stores a new goal.
func (s *GoalService) Create(ctx context.Context, userID int64, in CreateGoalInput) (*domain.FitnessGoal, error) {
	if strings.TrimSpace(in.GoalType) == "" {
		return nil, fmt.Errorf("%w: goalType is required", ErrValidation)
	}
	if in.TargetValue <= 0 {
		return nil, fmt.Errorf("%w: targetValue must be > 0", ErrValidation)
	}
	if in.CurrentValue < 0 {
		return nil, fmt.Errorf("%w: currentValue must be >= 0", ErrValidation)
	}

	g := domain.FitnessGoal{
		UserID:       userID,
		GoalType:     in.GoalType,
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		Unit:         in.Unit,
		Deadline:     in.Deadline,
		IsCompleted:  in.CurrentValue >= in.TargetValue,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.repo.CreateGoal(ctx, g)
	if err != nil {
		return nil, err
	}
	created.Progress = domain.GoalProgress(created.CurrentValue, created.TargetValue)
	return created, nil
}

// List returns all of the user's goals with derived progress filled in.
func (s *GoalService) List(ctx context.Context, userID int64) ([]domain.FitnessGoal, error) {
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].Progress = domain.GoalProgress(goals[i].CurrentValue, goals[i].TargetValue)
	}
	return goals, nil
}

// Get returns one goal or ErrGoalNotFound.
func (s *GoalService) Get(ctx context.Context, userID, id int64) (*domain.FitnessGoal, error) {
	g, err := s.repo.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}
	g.Progress = domain.GoalProgress(g.CurrentValue, g.TargetValue)
	return g, nil
}

// UpdateProgress sets the goal's current value, marking it completed once
// the value reaches the target. Progress past the target stays completed.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, id int64, currentValue float64) (*domain.FitnessGoal, error) {
	if currentValue < 0 {
		return nil, fmt.Errorf("%w: currentValue must be >= 0", ErrValidation)
	}

	g, err := s.repo.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}

	g.CurrentValue = currentValue
	if currentValue >= g.TargetValue {
		g.IsCompleted = true
	}
	if err := s.repo.SaveGoalProgress(ctx, *g); err != nil {
		return nil, err
	}
	g.Progress = domain.GoalProgress(g.CurrentValue, g.TargetValue)
	return g, nil
}

// Delete removes one goal.
func (s *GoalService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.DeleteGoal(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGoalNotFound
	}
	return nil
}
