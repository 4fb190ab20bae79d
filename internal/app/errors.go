package app

import "errors"

var (
	// ErrValidation marks input errors surfaced before any store mutation.
	// Services wrap it with detail: fmt.Errorf("%w: name is required", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrWorkoutNotFound covers both a missing workout and one owned by a
	// different user; callers cannot tell the two apart.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrMealNotFound is the meal equivalent of ErrWorkoutNotFound.
	ErrMealNotFound = errors.New("meal not found")
	// ErrGoalNotFound is the goal equivalent of ErrWorkoutNotFound.
	ErrGoalNotFound = errors.New("goal not found")
)
