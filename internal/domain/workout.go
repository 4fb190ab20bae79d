package domain

import (
	"context"
	"time"
)

// Workout is a training session owned by exactly one user.
type Workout struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	DurationMin    int        `json:"durationMin"`
	CaloriesBurned int        `json:"caloriesBurned"`
	WorkoutType    string     `json:"workoutType"`
	Difficulty     string     `json:"difficulty"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"createdAt"`
	Exercises      []Exercise `json:"exercises"`
}

// Exercise belongs to exactly one workout and is created together with it.
type Exercise struct {
	ID           int64     `json:"id"`
	WorkoutID    int64     `json:"workoutId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DurationSec  int       `json:"durationSec"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	RestSec      int       `json:"restSec"`
	MuscleGroups []string  `json:"muscleGroups"`
	Instructions []string  `json:"instructions"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WorkoutSummary is the list-view shape of a workout, without exercises.
type WorkoutSummary struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	DurationMin    int       `json:"durationMin"`
	CaloriesBurned int       `json:"caloriesBurned"`
	WorkoutType    string    `json:"workoutType"`
	Difficulty     string    `json:"difficulty"`
	Completed      bool      `json:"completed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// WorkoutUpdate carries a partial update. A nil field means "absent": only
// non-nil fields overwrite stored values, so a caller can never blank a
// field by omitting it.
type WorkoutUpdate struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	DurationMin    *int    `json:"durationMin"`
	CaloriesBurned *int    `json:"caloriesBurned"`
	WorkoutType    *string `json:"workoutType"`
	Difficulty     *string `json:"difficulty"`
	Completed      *bool   `json:"completed"`
}

// WorkoutTotals holds the raw aggregates behind a user's workout stats.
// Duration and calories sum over completed workouts only.
type WorkoutTotals struct {
	Total          int
	Completed      int
	DurationMin    int
	CaloriesBurned int
}

// WorkoutStats is the stats shape returned to callers.
type WorkoutStats struct {
	TotalWorkouts       int     `json:"totalWorkouts"`
	CompletedWorkouts   int     `json:"completedWorkouts"`
	TotalDurationMin    int     `json:"totalDurationMin"`
	TotalCaloriesBurned int     `json:"totalCaloriesBurned"`
	CompletionRate      float64 `json:"completionRate"`
}

// WorkoutRepository is the port for workout persistence. Every lookup is
// scoped by user ID; a workout owned by someone else behaves exactly like a
// missing one.
type WorkoutRepository interface {
	// CreateWorkout persists a workout and all of its exercises atomically
	// and returns the stored copy with IDs assigned.
	CreateWorkout(ctx context.Context, w Workout) (*Workout, error)
	// GetWorkout returns the full workout with exercises in creation order,
	// or nil if no workout with that ID is owned by the user.
	GetWorkout(ctx context.Context, userID, id int64) (*Workout, error)
	// ListWorkouts returns summaries ordered by creation time then ID.
	ListWorkouts(ctx context.Context, userID int64, offset, limit int) ([]WorkoutSummary, error)
	// SaveWorkout writes the mutable workout fields back to storage.
	SaveWorkout(ctx context.Context, w Workout) error
	// DeleteWorkout removes the workout and its exercises, reporting whether
	// a row matched.
	DeleteWorkout(ctx context.Context, userID, id int64) (bool, error)
	// MarkWorkoutCompleted sets completed=true, reporting whether a row
	// matched. Completing an already-completed workout still matches.
	MarkWorkoutCompleted(ctx context.Context, userID, id int64) (bool, error)
	WorkoutTotals(ctx context.Context, userID int64) (WorkoutTotals, error)
}
