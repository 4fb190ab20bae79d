package domain

import (
	"context"
	"time"
)

// FitnessGoal tracks progress toward a numeric target.
type FitnessGoal struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	GoalType     string    `json:"goalType"`
	TargetValue  float64   `json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	Unit         string    `json:"unit"`
	Deadline     time.Time `json:"deadline"`
	IsCompleted  bool      `json:"isCompleted"`
	CreatedAt    time.Time `json:"createdAt"`

	// Progress is derived from current/target and never persisted.
	Progress float64 `json:"progress"`
}

// GoalRepository is the port for fitness-goal persistence.
type GoalRepository interface {
	CreateGoal(ctx context.Context, g FitnessGoal) (*FitnessGoal, error)
	GetGoal(ctx context.Context, userID, id int64) (*FitnessGoal, error)
	ListGoals(ctx context.Context, userID int64) ([]FitnessGoal, error)
	// SaveGoalProgress writes current_value and is_completed back to storage.
	SaveGoalProgress(ctx context.Context, g FitnessGoal) error
	DeleteGoal(ctx context.Context, userID, id int64) (bool, error)
}
