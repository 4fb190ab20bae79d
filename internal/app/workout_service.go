package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitfusion/internal/domain"
)

// WorkoutService encapsulates the workout CRUD and stats use cases. Every
// operation is scoped to the authenticated user's ID; a workout belonging to
// someone else is indistinguishable from a missing one.
type WorkoutService struct {
	repo domain.WorkoutRepository
}

// NewWorkoutService creates a WorkoutService backed by the given repository.
func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// ExerciseInput carries the fields for one exercise of a new workout.
type ExerciseInput struct {
	Name         string
	Description  string
	DurationSec  int
	Sets         int
	Reps         int
	Weight       float64
	RestSec      int
	MuscleGroups []string
	Instructions []string
}

// CreateWorkoutInput carries the fields for a new workout.
type CreateWorkoutInput struct {
	Name           string
	Description    string
	DurationMin    int
	CaloriesBurned int
	WorkoutType    string
	Difficulty     string
	Exercises      []ExerciseInput
}

// Create validates the input and persists a new workout together with its
// exercises. The workout and its exercises persist atomically.
func (s *WorkoutService) Create(ctx context.Context, userID int64, in CreateWorkoutInput) (*domain.Workout, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.DurationMin <= 0 {
		return nil, fmt.Errorf("%w: duration must be > 0", ErrValidation)
	}
	if in.CaloriesBurned < 0 {
		return nil, fmt.Errorf("%w: caloriesBurned must be >= 0", ErrValidation)
	}
	if strings.TrimSpace(in.WorkoutType) == "" {
		return nil, fmt.Errorf("%w: workoutType is required", ErrValidation)
	}
	if strings.TrimSpace(in.Difficulty) == "" {
		return nil, fmt.Errorf("%w: difficulty is required", ErrValidation)
	}

	now := time.Now().UTC()
	w := domain.Workout{
		UserID:         userID,
		Name:           in.Name,
		Description:    in.Description,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		WorkoutType:    in.WorkoutType,
		Difficulty:     in.Difficulty,
		Completed:      false,
		CreatedAt:      now,
		Exercises:      make([]domain.Exercise, 0, len(in.Exercises)),
	}
	for i, ex := range in.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return nil, fmt.Errorf("%w: exercise %d: name is required", ErrValidation, i+1)
		}
		if ex.DurationSec < 0 || ex.Sets < 0 || ex.Reps < 0 || ex.Weight < 0 || ex.RestSec < 0 {
			return nil, fmt.Errorf("%w: exercise %d: numeric fields must be >= 0", ErrValidation, i+1)
		}
		w.Exercises = append(w.Exercises, domain.Exercise{
			Name:         ex.Name,
			Description:  ex.Description,
			DurationSec:  ex.DurationSec,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			Weight:       ex.Weight,
			RestSec:      ex.RestSec,
			MuscleGroups: ex.MuscleGroups,
			Instructions: ex.Instructions,
			CreatedAt:    now,
		})
	}

	return s.repo.CreateWorkout(ctx, w)
}

// List returns workout summaries for the user, ordered by creation time,
// offset by skip and capped at limit.
func (s *WorkoutService) List(ctx context.Context, userID int64, skip, limit int) ([]domain.WorkoutSummary, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	return s.repo.ListWorkouts(ctx, userID, skip, limit)
}

// Get returns the full workout including exercises, or ErrWorkoutNotFound.
func (s *WorkoutService) Get(ctx context.Context, userID, id int64) (*domain.Workout, error) {
	w, err := s.repo.GetWorkout(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWorkoutNotFound
	}
	return w, nil
}

// Update applies the non-nil fields of upd and returns the updated workout.
// An empty update returns the workout unchanged. Note that upd.Completed can
// move the flag in either direction, while Complete only sets it; both paths
// exist on purpose.
func (s *WorkoutService) Update(ctx context.Context, userID, id int64, upd domain.WorkoutUpdate) (*domain.Workout, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if upd.DurationMin != nil && *upd.DurationMin <= 0 {
		return nil, fmt.Errorf("%w: duration must be > 0", ErrValidation)
	}
	if upd.CaloriesBurned != nil && *upd.CaloriesBurned < 0 {
		return nil, fmt.Errorf("%w: caloriesBurned must be >= 0", ErrValidation)
	}
	if upd.WorkoutType != nil && strings.TrimSpace(*upd.WorkoutType) == "" {
		return nil, fmt.Errorf("%w: workoutType must not be empty", ErrValidation)
	}
	if upd.Difficulty != nil && strings.TrimSpace(*upd.Difficulty) == "" {
		return nil, fmt.Errorf("%w: difficulty must not be empty", ErrValidation)
	}

	w, err := s.repo.GetWorkout(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWorkoutNotFound
	}

	if upd.Name != nil {
		w.Name = *upd.Name
	}
	if upd.Description != nil {
		w.Description = *upd.Description
	}
	if upd.DurationMin != nil {
		w.DurationMin = *upd.DurationMin
	}
	if upd.CaloriesBurned != nil {
		w.CaloriesBurned = *upd.CaloriesBurned
	}
	if upd.WorkoutType != nil {
		w.WorkoutType = *upd.WorkoutType
	}
	if upd.Difficulty != nil {
		w.Difficulty = *upd.Difficulty
	}
	if upd.Completed != nil {
		w.Completed = *upd.Completed
	}

	if err := s.repo.SaveWorkout(ctx, *w); err != nil {
		return nil, err
	}
	return w, nil
}

// Delete removes the workout and, by cascade, its exercises.
func (s *WorkoutService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.DeleteWorkout(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWorkoutNotFound
	}
	return nil
}

// Complete marks the workout completed. Completing an already-completed
// workout is a no-op success.
func (s *WorkoutService) Complete(ctx context.Context, userID, id int64) error {
	ok, err := s.repo.MarkWorkoutCompleted(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkoutNotFound
	}
	return nil
}

// Stats computes summary statistics over all workouts owned by the user.
func (s *WorkoutService) Stats(ctx context.Context, userID int64) (*domain.WorkoutStats, error) {
	t, err := s.repo.WorkoutTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.WorkoutStats{
		TotalWorkouts:       t.Total,
		CompletedWorkouts:   t.Completed,
		TotalDurationMin:    t.DurationMin,
		TotalCaloriesBurned: t.CaloriesBurned,
		CompletionRate:      domain.CompletionRate(t.Completed, t.Total),
	}, nil
}
