package app_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"fitfusion/internal/adapter/memory"
	"fitfusion/internal/app"
	"fitfusion/internal/domain"
)

func newWorkoutService() (*app.WorkoutService, *memory.DB) {
	db := memory.New()
	return app.NewWorkoutService(db), db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestCreateWorkout_Validation(t *testing.T) {
	svc, _ := newWorkoutService()

	valid := app.CreateWorkoutInput{
		Name: "Morning Run", DurationMin: 30, WorkoutType: "cardio", Difficulty: "easy",
	}

	tests := []struct {
		name   string
		mutate func(*app.CreateWorkoutInput)
	}{
		{"empty name", func(in *app.CreateWorkoutInput) { in.Name = " " }},
		{"zero duration", func(in *app.CreateWorkoutInput) { in.DurationMin = 0 }},
		{"negative calories", func(in *app.CreateWorkoutInput) { in.CaloriesBurned = -1 }},
		{"missing type", func(in *app.CreateWorkoutInput) { in.WorkoutType = "" }},
		{"missing difficulty", func(in *app.CreateWorkoutInput) { in.Difficulty = "" }},
		{"exercise without name", func(in *app.CreateWorkoutInput) {
			in.Exercises = []app.ExerciseInput{{Name: ""}}
		}},
		{"exercise negative sets", func(in *app.CreateWorkoutInput) {
			in.Exercises = []app.ExerciseInput{{Name: "Squat", Sets: -1}}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := svc.Create(context.Background(), 1, in)
			if !errors.Is(err, app.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateWorkoutWithExercises(t *testing.T) {
	svc, _ := newWorkoutService()

	created, err := svc.Create(context.Background(), 1, app.CreateWorkoutInput{
		Name: "Push Day", DurationMin: 45, CaloriesBurned: 300,
		WorkoutType: "strength", Difficulty: "medium",
		Exercises: []app.ExerciseInput{
			{Name: "Bench Press", Sets: 4, Reps: 8, Weight: 60, MuscleGroups: []string{"chest"}},
			{Name: "Dips", Sets: 3, Reps: 12},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected workout id to be assigned")
	}
	if len(created.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(created.Exercises))
	}
	for _, ex := range created.Exercises {
		if ex.ID == 0 || ex.WorkoutID != created.ID {
			t.Fatalf("exercise not linked: id=%d workoutId=%d", ex.ID, ex.WorkoutID)
		}
	}

	got, err := svc.Get(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Exercises) != 2 || got.Exercises[0].Name != "Bench Press" {
		t.Fatalf("exercises not returned in creation order: %+v", got.Exercises)
	}
}

func TestWorkoutOwnershipScoping(t *testing.T) {
	svc, _ := newWorkoutService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, app.CreateWorkoutInput{
		Name: "Leg Day", DurationMin: 60, WorkoutType: "strength", Difficulty: "hard",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Another user sees the same NotFound as for a missing workout.
	if _, err := svc.Get(ctx, 2, created.ID); !errors.Is(err, app.ErrWorkoutNotFound) {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}
	if _, err := svc.Update(ctx, 2, created.ID, domain.WorkoutUpdate{Name: strPtr("x")}); !errors.Is(err, app.ErrWorkoutNotFound) {
		t.Fatalf("expected not found on foreign update, got %v", err)
	}
	if err := svc.Delete(ctx, 2, created.ID); !errors.Is(err, app.ErrWorkoutNotFound) {
		t.Fatalf("expected not found on foreign delete, got %v", err)
	}
	if err := svc.Complete(ctx, 2, created.ID); !errors.Is(err, app.ErrWorkoutNotFound) {
		t.Fatalf("expected not found on foreign complete, got %v", err)
	}

	// The owner still sees it untouched.
	got, err := svc.Get(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Name != "Leg Day" || got.Completed {
		t.Fatalf("workout changed by foreign operations: %+v", got)
	}
}

func TestDeleteWorkoutCascades(t *testing.T) {
	svc, _ := newWorkoutService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, app.CreateWorkoutInput{
		Name: "HIIT", DurationMin: 20, WorkoutType: "cardio", Difficulty: "hard",
		Exercises: []app.ExerciseInput{{Name: "Burpees", Reps: 20}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, 1, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, 1, created.ID); !errors.Is(err, app.ErrWorkoutNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, 1, created.ID); !errors.Is(err, app.ErrWorkoutNotFound) {
		t.Fatalf("expected not found on double delete, got %v", err)
	}
}

func TestCompleteIdempotent(t *testing.T) {
	svc, _ := newWorkoutService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, app.CreateWorkoutInput{
		Name: "Swim", DurationMin: 40, WorkoutType: "cardio", Difficulty: "medium",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Complete(ctx, 1, created.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if err := svc.Complete(ctx, 1, created.ID); err != nil {
		t.Fatalf("second complete should be a no-op success, got %v", err)
	}

	got, err := svc.Get(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Completed {
		t.Fatal("expected completed=true")
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newWorkoutService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, app.CreateWorkoutInput{
		Name: "Yoga", Description: "evening flow", DurationMin: 30,
		CaloriesBurned: 100, WorkoutType: "flexibility", Difficulty: "easy",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, 1, created.ID, domain.WorkoutUpdate{DurationMin: intPtr(45)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DurationMin != 45 {
		t.Fatalf("expected duration 45, got %d", updated.DurationMin)
	}
	if updated.Name != "Yoga" || updated.Description != "evening flow" || updated.CaloriesBurned != 100 {
		t.Fatalf("absent fields were changed: %+v", updated)
	}

	// Empty update leaves everything as-is.
	unchanged, err := svc.Update(ctx, 1, created.ID, domain.WorkoutUpdate{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if unchanged.DurationMin != 45 || unchanged.Name != "Yoga" {
		t.Fatalf("empty update changed fields: %+v", unchanged)
	}

	// Update can flip completed in either direction.
	if _, err := svc.Update(ctx, 1, created.ID, domain.WorkoutUpdate{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("set completed: %v", err)
	}
	reverted, err := svc.Update(ctx, 1, created.ID, domain.WorkoutUpdate{Completed: boolPtr(false)})
	if err != nil {
		t.Fatalf("unset completed: %v", err)
	}
	if reverted.Completed {
		t.Fatal("expected completed=false after revert")
	}
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newWorkoutService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, app.CreateWorkoutInput{
		Name: "Row", DurationMin: 25, WorkoutType: "cardio", Difficulty: "medium",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, 1, created.ID, domain.WorkoutUpdate{Name: strPtr(" ")}); !errors.Is(err, app.ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if _, err := svc.Update(ctx, 1, created.ID, domain.WorkoutUpdate{DurationMin: intPtr(0)}); !errors.Is(err, app.ErrValidation) {
		t.Fatalf("expected validation error for zero duration, got %v", err)
	}
}

func TestStats(t *testing.T) {
	svc, _ := newWorkoutService()
	ctx := context.Background()

	ids := make([]int64, 0, 3)
	for _, in := range []app.CreateWorkoutInput{
		{Name: "A", DurationMin: 30, CaloriesBurned: 200, WorkoutType: "cardio", Difficulty: "easy"},
		{Name: "B", DurationMin: 45, CaloriesBurned: 350, WorkoutType: "strength", Difficulty: "medium"},
		{Name: "C", DurationMin: 60, CaloriesBurned: 500, WorkoutType: "strength", Difficulty: "hard"},
	} {
		w, err := svc.Create(ctx, 1, in)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, w.ID)
	}
	if err := svc.Complete(ctx, 1, ids[0]); err != nil {
		t.Fatalf("complete: %v", err)
	}

	stats, err := svc.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalWorkouts != 3 || stats.CompletedWorkouts != 1 {
		t.Fatalf("expected 3 total / 1 completed, got %d/%d", stats.TotalWorkouts, stats.CompletedWorkouts)
	}
	if stats.TotalDurationMin != 30 || stats.TotalCaloriesBurned != 200 {
		t.Fatalf("sums should cover completed workouts only, got %d min / %d cal",
			stats.TotalDurationMin, stats.TotalCaloriesBurned)
	}
	if math.Abs(stats.CompletionRate-100.0/3.0) > 1e-9 {
		t.Fatalf("expected completion rate 33.33..., got %v", stats.CompletionRate)
	}

	// A user with no workouts gets zeros, not a division error.
	empty, err := svc.Stats(ctx, 2)
	if err != nil {
		t.Fatalf("stats empty: %v", err)
	}
	if empty.TotalWorkouts != 0 || empty.CompletionRate != 0 {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}

func TestListSkipLimit(t *testing.T) {
	svc, _ := newWorkoutService()
	ctx := context.Background()

	names := []string{"W1", "W2", "W3", "W4", "W5"}
	for _, n := range names {
		if _, err := svc.Create(ctx, 1, app.CreateWorkoutInput{
			Name: n, DurationMin: 10, WorkoutType: "cardio", Difficulty: "easy",
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := svc.List(ctx, 1, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].Name != "W3" || page[1].Name != "W4" {
		t.Fatalf("unexpected page: %+v", page)
	}

	// Skip past the end yields an empty page.
	tail, err := svc.List(ctx, 1, 10, 2)
	if err != nil {
		t.Fatalf("list tail: %v", err)
	}
	if len(tail) != 0 {
		t.Fatalf("expected empty page, got %d items", len(tail))
	}

	// Negative skip and zero limit fall back to defaults.
	all, err := svc.List(ctx, 1, -1, 0)
	if err != nil {
		t.Fatalf("list defaults: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("expected %d items, got %d", len(names), len(all))
	}
}
